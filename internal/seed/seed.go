package seed

import (
	"context"
	"fmt"

	"github.com/quizado/quizado/internal/quiz"
)

// Quizzes inserts the demo quizzes into an empty store. A non-empty store is
// left alone so restarts don't duplicate data.
func Quizzes(ctx context.Context, store quiz.Store) (int, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, qz := range sampleQuizzes {
		if err := qz.Validate(); err != nil {
			return 0, fmt.Errorf("seed quiz %q: %w", qz.Name, err)
		}
		if _, err := store.Create(ctx, qz); err != nil {
			return 0, fmt.Errorf("seed quiz %q: %w", qz.Name, err)
		}
	}
	return len(sampleQuizzes), nil
}

var sampleQuizzes = []quiz.Quiz{
	{
		Name:        "JavaScript Basics",
		Description: "Test your knowledge of JavaScript fundamentals",
		Questions: []quiz.Question{
			{
				Text: "What is the correct way to declare a variable in JavaScript?",
				Type: quiz.TypeSingle,
				Options: []quiz.Option{
					{Text: "let x = 5;", IsCorrect: true},
					{Text: "variable x = 5;"},
					{Text: "var x := 5;"},
					{Text: "x = 5;"},
				},
			},
			{
				Text: "Which of these are JavaScript data types?",
				Type: quiz.TypeMultiple,
				Options: []quiz.Option{
					{Text: "String", IsCorrect: true},
					{Text: "Number", IsCorrect: true},
					{Text: "Character"},
					{Text: "Boolean", IsCorrect: true},
				},
			},
			{
				Text:          "What does DOM stand for?",
				Type:          quiz.TypeText,
				CorrectAnswer: "Document Object Model",
			},
		},
	},
	{
		Name:        "React Fundamentals",
		Description: "Test your React knowledge",
		Questions: []quiz.Question{
			{
				Text: "What is JSX?",
				Type: quiz.TypeSingle,
				Options: []quiz.Option{
					{Text: "A syntax extension for JavaScript", IsCorrect: true},
					{Text: "A new programming language"},
					{Text: "A CSS framework"},
					{Text: "A database query language"},
				},
			},
			{
				Text: "Which hooks are built into React?",
				Type: quiz.TypeMultiple,
				Options: []quiz.Option{
					{Text: "useState", IsCorrect: true},
					{Text: "useEffect", IsCorrect: true},
					{Text: "useData"},
					{Text: "useContext", IsCorrect: true},
				},
			},
		},
	},
}
