package result

// Detail is one graded question as shown on the review screen.
type Detail struct {
	Question string `json:"question"`
	Answer   string `json:"answer"` // rendered chosen-answer text, original casing

	// Correct is nil for ungradable questions (free-text without a
	// reference answer); those are excluded from scoring.
	Correct *bool `json:"correct"`
}

// Summary is a graded attempt before the store assigns id and date.
type Summary struct {
	QuizName   string   `json:"quiz_name"`
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Percentage int      `json:"percentage"`
	Details    []Detail `json:"details"`
}

// Result is a persisted, immutable attempt record. QuizName is a denormalized
// copy so the record survives deletion of the quiz itself.
type Result struct {
	ID         string   `json:"id"`
	QuizName   string   `json:"quiz_name"`
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Percentage int      `json:"percentage"`
	Details    []Detail `json:"details"`
	Date       string   `json:"date"` // RFC3339, assigned by the store, sort key
}

// FromSummary builds the record the store will assign id/date to.
func FromSummary(s Summary) Result {
	return Result{
		QuizName:   s.QuizName,
		Score:      s.Score,
		Total:      s.Total,
		Percentage: s.Percentage,
		Details:    s.Details,
	}
}
