package grading

import (
	"sort"
	"strings"

	"github.com/quizado/quizado/internal/quiz"
)

// Answer is the canonical form of a learner response, discriminated by the
// question's type. Exactly one of the payload fields is meaningful.
type Answer struct {
	Type quiz.QuestionType

	Index   int    // single: chosen option index
	Indices []int  // multiple: deduplicated, ascending
	Text    string // text: original casing preserved for display

	Answered bool
}

// folded returns the comparison form of a text answer.
func (a Answer) folded() string {
	return strings.ToLower(strings.TrimSpace(a.Text))
}

// Normalize converts a raw response into an Answer. Raw values are whatever
// the transport produced: JSON numbers arrive as float64, index lists as
// []interface{}. Malformed input degrades to "unanswered", never an error.
func Normalize(q quiz.Question, raw interface{}) Answer {
	a := Answer{Type: q.Type}
	switch q.Type {
	case quiz.TypeSingle:
		idx, ok := toIndex(raw)
		if !ok {
			return a
		}
		a.Index = idx
		a.Answered = true
	case quiz.TypeMultiple:
		indices, ok := toIndexSet(raw)
		if !ok {
			return a
		}
		a.Indices = indices
		a.Answered = true
	case quiz.TypeText:
		s, ok := raw.(string)
		if !ok {
			return a
		}
		a.Text = s
		a.Answered = strings.TrimSpace(s) != ""
	}
	return a
}

func toIndex(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		i := int(t)
		if float64(i) != t {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// toIndexSet accepts []int, []float64 and []interface{} payloads, dropping
// malformed elements and duplicates. A non-slice value is "unanswered";
// an empty slice is an answered-but-empty selection.
func toIndexSet(v interface{}) ([]int, bool) {
	var raw []interface{}
	switch t := v.(type) {
	case []int:
		raw = make([]interface{}, len(t))
		for i, n := range t {
			raw[i] = n
		}
	case []float64:
		raw = make([]interface{}, len(t))
		for i, n := range t {
			raw[i] = n
		}
	case []interface{}:
		raw = t
	default:
		return nil, false
	}
	seen := map[int]struct{}{}
	out := make([]int, 0, len(raw))
	for _, e := range raw {
		idx, ok := toIndex(e)
		if !ok {
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out, true
}
