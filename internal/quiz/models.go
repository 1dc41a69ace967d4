package quiz

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"   // one option index
	TypeMultiple QuestionType = "multiple" // set of option indices
	TypeText     QuestionType = "text"     // free-text answer
)

type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []Option     `json:"options,omitempty"` // empty for text questions

	// CorrectAnswer is the reference answer for text questions. When empty
	// the question cannot be auto-graded.
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// CorrectIndices returns the indices of options marked correct, in option order.
func (q Question) CorrectIndices() []int {
	var out []int
	for i, o := range q.Options {
		if o.IsCorrect {
			out = append(out, i)
		}
	}
	return out
}
