package grading

import (
	"math"

	"github.com/quizado/quizado/internal/quiz"
	"github.com/quizado/quizado/internal/result"
)

// Aggregate grades a complete attempt: one raw answer per question, indexed
// by question position (missing tail entries count as unanswered). It is a
// pure fold over the question list, so the same quiz and answers always
// produce the same summary.
func Aggregate(g Grader, qz quiz.Quiz, rawAnswers []interface{}) result.Summary {
	correct := 0
	gradable := 0
	details := make([]result.Detail, 0, len(qz.Questions))

	for i, q := range qz.Questions {
		var raw interface{}
		if i < len(rawAnswers) {
			raw = rawAnswers[i]
		}
		out := g.Grade(q, Normalize(q, raw))
		if out.Verdict != nil {
			gradable++
			if *out.Verdict {
				correct++
			}
		}
		details = append(details, result.Detail{
			Question: q.Text,
			Answer:   out.AnswerText,
			Correct:  out.Verdict,
		})
	}

	// An all-ungradable quiz would otherwise score 0/0; fall back to the
	// question count so the percentage stays defined.
	total := gradable
	if total == 0 {
		total = len(qz.Questions)
	}
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return result.Summary{
		QuizName:   qz.Name,
		Score:      correct,
		Total:      total,
		Percentage: pct,
		Details:    details,
	}
}
