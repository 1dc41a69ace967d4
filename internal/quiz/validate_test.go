package quiz_test

import (
	"strings"
	"testing"

	"github.com/quizado/quizado/internal/quiz"
)

func validQuiz() quiz.Quiz {
	return quiz.Quiz{
		Name:        "Sample",
		Description: "a quiz",
		Questions: []quiz.Question{
			{
				Text: "Pick one",
				Type: quiz.TypeSingle,
				Options: []quiz.Option{
					{Text: "right", IsCorrect: true},
					{Text: "wrong"},
				},
			},
			{
				Text: "Pick some",
				Type: quiz.TypeMultiple,
				Options: []quiz.Option{
					{Text: "a", IsCorrect: true},
					{Text: "b", IsCorrect: true},
					{Text: "c"},
				},
			},
			{
				Text:          "Type it",
				Type:          quiz.TypeText,
				CorrectAnswer: "answer",
			},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validQuiz().Validate(); err != nil {
		t.Fatalf("valid quiz rejected: %v", err)
	}

	// a text question without a reference answer is authorable, just not gradable
	qz := validQuiz()
	qz.Questions[2].CorrectAnswer = ""
	if err := qz.Validate(); err != nil {
		t.Fatalf("text question without reference rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*quiz.Quiz)
		wantErr string
	}{
		{
			name:    "short name",
			mutate:  func(qz *quiz.Quiz) { qz.Name = "ab" },
			wantErr: "at least 3 characters",
		},
		{
			name:    "no questions",
			mutate:  func(qz *quiz.Quiz) { qz.Questions = nil },
			wantErr: "at least one question",
		},
		{
			name:    "missing question text",
			mutate:  func(qz *quiz.Quiz) { qz.Questions[0].Text = "" },
			wantErr: "text is required",
		},
		{
			name:    "single with one option",
			mutate:  func(qz *quiz.Quiz) { qz.Questions[0].Options = qz.Questions[0].Options[:1] },
			wantErr: "at least 2 options",
		},
		{
			name: "single with two correct",
			mutate: func(qz *quiz.Quiz) {
				qz.Questions[0].Options[1].IsCorrect = true
			},
			wantErr: "exactly one correct option",
		},
		{
			name: "multiple with none correct",
			mutate: func(qz *quiz.Quiz) {
				for i := range qz.Questions[1].Options {
					qz.Questions[1].Options[i].IsCorrect = false
				}
			},
			wantErr: "at least one correct option",
		},
		{
			name: "text with options",
			mutate: func(qz *quiz.Quiz) {
				qz.Questions[2].Options = []quiz.Option{{Text: "stray"}}
			},
			wantErr: "must not carry options",
		},
		{
			name:    "unknown type",
			mutate:  func(qz *quiz.Quiz) { qz.Questions[0].Type = "essay" },
			wantErr: "unknown question type",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			qz := validQuiz()
			tc.mutate(&qz)
			err := qz.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}
