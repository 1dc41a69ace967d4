package grading_test

import (
	"testing"

	"github.com/quizado/quizado/internal/grading"
	"github.com/quizado/quizado/internal/quiz"
)

func singleQuestion() quiz.Question {
	return quiz.Question{
		Text: "Capital of France?",
		Type: quiz.TypeSingle,
		Options: []quiz.Option{
			{Text: "Berlin"},
			{Text: "Madrid"},
			{Text: "Paris", IsCorrect: true},
			{Text: "Rome"},
		},
	}
}

func multipleQuestion() quiz.Question {
	return quiz.Question{
		Text: "Which are primary colors?",
		Type: quiz.TypeMultiple,
		Options: []quiz.Option{
			{Text: "Red", IsCorrect: true},
			{Text: "Green"},
			{Text: "Blue", IsCorrect: true},
			{Text: "Orange"},
		},
	}
}

func textQuestion(ref string) quiz.Question {
	return quiz.Question{Text: "Capital of France?", Type: quiz.TypeText, CorrectAnswer: ref}
}

func TestGradeSingle(t *testing.T) {
	g := grading.NewGrader()
	q := singleQuestion()

	tests := []struct {
		name    string
		raw     interface{}
		verdict bool
		answer  string
	}{
		{name: "correct index", raw: 2, verdict: true, answer: "Paris"},
		{name: "wrong index", raw: 0, verdict: false, answer: "Berlin"},
		{name: "json float index", raw: float64(2), verdict: true, answer: "Paris"},
		{name: "unanswered", raw: nil, verdict: false, answer: ""},
		{name: "out of range", raw: 9, verdict: false, answer: ""},
		{name: "negative index", raw: -1, verdict: false, answer: ""},
		{name: "type confusion", raw: "2", verdict: false, answer: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := g.Grade(q, grading.Normalize(q, tc.raw))
			assertVerdict(t, out.Verdict, &tc.verdict)
			if out.AnswerText != tc.answer {
				t.Errorf("answer text = %q, want %q", out.AnswerText, tc.answer)
			}
		})
	}
}

func TestGradeMultiple(t *testing.T) {
	g := grading.NewGrader()
	q := multipleQuestion()

	tests := []struct {
		name    string
		raw     interface{}
		verdict bool
		answer  string
	}{
		{name: "exact set", raw: []int{0, 2}, verdict: true, answer: "Red, Blue"},
		{name: "order independent", raw: []int{2, 0}, verdict: true, answer: "Red, Blue"},
		{name: "duplicates collapse", raw: []int{0, 0, 2}, verdict: true, answer: "Red, Blue"},
		{name: "proper subset", raw: []int{0}, verdict: false, answer: "Red"},
		{name: "superset", raw: []int{0, 1, 2}, verdict: false, answer: "Red, Green, Blue"},
		{name: "disjoint", raw: []int{1, 3}, verdict: false, answer: "Green, Orange"},
		{name: "empty set", raw: []int{}, verdict: false, answer: ""},
		{name: "unanswered", raw: nil, verdict: false, answer: ""},
		{name: "json payload", raw: []interface{}{float64(2), float64(0)}, verdict: true, answer: "Red, Blue"},
		{name: "out of range counts as wrong", raw: []int{0, 2, 9}, verdict: false, answer: "Red, Blue"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := g.Grade(q, grading.Normalize(q, tc.raw))
			assertVerdict(t, out.Verdict, &tc.verdict)
			if out.AnswerText != tc.answer {
				t.Errorf("answer text = %q, want %q", out.AnswerText, tc.answer)
			}
		})
	}
}

func TestGradeTextExactMatch(t *testing.T) {
	g := grading.NewGrader()
	q := textQuestion("Paris")

	tests := []struct {
		name    string
		raw     interface{}
		verdict bool
		answer  string
	}{
		{name: "exact", raw: "Paris", verdict: true, answer: "Paris"},
		{name: "case insensitive", raw: "pArIs", verdict: true, answer: "pArIs"},
		{name: "surrounding whitespace", raw: " paris ", verdict: true, answer: " paris "},
		{name: "substring is not enough", raw: "Paris, France", verdict: false, answer: "Paris, France"},
		{name: "wrong answer", raw: "Lyon", verdict: false, answer: "Lyon"},
		{name: "empty", raw: "", verdict: false, answer: ""},
		{name: "unanswered", raw: nil, verdict: false, answer: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := g.Grade(q, grading.Normalize(q, tc.raw))
			assertVerdict(t, out.Verdict, &tc.verdict)
			if out.AnswerText != tc.answer {
				t.Errorf("answer text = %q, want %q", out.AnswerText, tc.answer)
			}
		})
	}
}

func TestGradeTextSubstringOption(t *testing.T) {
	g := grading.NewGrader(grading.WithSubstringTextMatch(true))
	q := textQuestion("Paris")

	tests := []struct {
		name    string
		raw     string
		verdict bool
	}{
		{name: "containing phrase passes", raw: "Paris, France", verdict: true},
		{name: "exact still passes", raw: "paris", verdict: true},
		{name: "unrelated fails", raw: "Lyon", verdict: false},
		{name: "empty fails", raw: "", verdict: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := g.Grade(q, grading.Normalize(q, tc.raw))
			assertVerdict(t, out.Verdict, &tc.verdict)
		})
	}
}

func TestGradeTextUngradable(t *testing.T) {
	g := grading.NewGrader()
	q := textQuestion("")

	for _, raw := range []interface{}{"anything at all", "", nil} {
		out := g.Grade(q, grading.Normalize(q, raw))
		if out.Verdict != nil {
			t.Errorf("verdict for %v = %v, want nil (ungradable)", raw, *out.Verdict)
		}
	}
	// original casing survives for display
	out := g.Grade(q, grading.Normalize(q, "  My Answer  "))
	if out.AnswerText != "  My Answer  " {
		t.Errorf("answer text = %q, want raw string preserved", out.AnswerText)
	}
}

// A question with no correct options is a malformed quiz; grading still
// completes and nothing counts as correct.
func TestGradeMalformedQuestion(t *testing.T) {
	g := grading.NewGrader()
	q := quiz.Question{
		Text:    "broken",
		Type:    quiz.TypeMultiple,
		Options: []quiz.Option{{Text: "A"}, {Text: "B"}},
	}
	out := g.Grade(q, grading.Normalize(q, []int{}))
	assertVerdict(t, out.Verdict, boolPtr(false))

	unknown := quiz.Question{Text: "?", Type: quiz.QuestionType("essay")}
	out = g.Grade(unknown, grading.Normalize(unknown, "hi"))
	assertVerdict(t, out.Verdict, boolPtr(false))
}

func assertVerdict(t *testing.T, got, want *bool) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("verdict = %v, want %v", fmtVerdict(got), fmtVerdict(want))
	case *got != *want:
		t.Errorf("verdict = %v, want %v", *got, *want)
	}
}

func fmtVerdict(v *bool) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolPtr(b bool) *bool { return &b }
