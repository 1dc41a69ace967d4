package grading

import (
	"strings"

	"github.com/quizado/quizado/internal/quiz"
)

// Outcome is the per-question grading result.
type Outcome struct {
	// Verdict is true/false for gradable questions and nil when the
	// question cannot be auto-graded.
	Verdict *bool

	// AnswerText is the human-readable rendering of the chosen answer.
	AnswerText string
}

// Strategy grades a single question of one type.
type Strategy interface {
	Grade(q quiz.Question, a Answer) Outcome
}

// Grader routes a question to the Strategy for its type. Grading is total:
// unknown types and out-of-range indices come back as incorrect, never as
// an error, so one bad question cannot abort an attempt.
type Grader interface {
	Grade(q quiz.Question, a Answer) Outcome
}

type Option func(*config)

type config struct {
	SubstringTextMatch bool
}

// WithSubstringTextMatch restores the historical text rule where a response
// merely containing the reference answer counts as correct. The default is
// exact trimmed case-insensitive equality.
func WithSubstringTextMatch(b bool) Option {
	return func(c *config) { c.SubstringTextMatch = b }
}

type defaultGrader struct {
	strategies map[quiz.QuestionType]Strategy
}

// NewGrader installs the built-in strategies.
func NewGrader(opts ...Option) Grader {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	return &defaultGrader{
		strategies: map[quiz.QuestionType]Strategy{
			quiz.TypeSingle:   singleStrategy{},
			quiz.TypeMultiple: multipleStrategy{},
			quiz.TypeText:     textStrategy{substring: cfg.SubstringTextMatch},
		},
	}
}

func (g *defaultGrader) Grade(q quiz.Question, a Answer) Outcome {
	s, ok := g.strategies[q.Type]
	if !ok {
		return Outcome{Verdict: boolPtr(false)}
	}
	return s.Grade(q, a)
}

type singleStrategy struct{}

func (singleStrategy) Grade(q quiz.Question, a Answer) Outcome {
	out := Outcome{Verdict: boolPtr(false)}
	if !a.Answered || a.Index < 0 || a.Index >= len(q.Options) {
		return out
	}
	opt := q.Options[a.Index]
	out.AnswerText = opt.Text
	out.Verdict = boolPtr(opt.IsCorrect)
	return out
}

type multipleStrategy struct{}

func (multipleStrategy) Grade(q quiz.Question, a Answer) Outcome {
	// The verdict compares the full submitted set, so an out-of-range index
	// can only make the answer wrong, never crash the pass.
	chosen := map[int]struct{}{}
	for _, idx := range a.Indices {
		chosen[idx] = struct{}{}
	}
	correct := q.CorrectIndices()
	verdict := len(chosen) == len(correct) && len(correct) > 0
	for _, idx := range correct {
		if _, ok := chosen[idx]; !ok {
			verdict = false
			break
		}
	}
	// render in original option order, skipping indices that match nothing
	texts := make([]string, 0, len(a.Indices))
	for i, opt := range q.Options {
		if _, ok := chosen[i]; ok {
			texts = append(texts, opt.Text)
		}
	}
	return Outcome{Verdict: boolPtr(verdict), AnswerText: strings.Join(texts, ", ")}
}

type textStrategy struct{ substring bool }

func (s textStrategy) Grade(q quiz.Question, a Answer) Outcome {
	out := Outcome{AnswerText: a.Text}
	ref := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
	if ref == "" {
		// no reference answer: not auto-gradable
		return out
	}
	got := a.folded()
	if s.substring {
		out.Verdict = boolPtr(got != "" && strings.Contains(got, ref))
		return out
	}
	out.Verdict = boolPtr(got == ref)
	return out
}

func boolPtr(b bool) *bool { return &b }
