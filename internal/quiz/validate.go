package quiz

import "fmt"

// Authoring rules enforced at create/update time. Grading assumes a quiz
// that passed these checks but still degrades gracefully if one slips by.
const minNameLen = 3

func (qz Quiz) Validate() error {
	if len([]rune(qz.Name)) < minNameLen {
		return fmt.Errorf("quiz name must be at least %d characters", minNameLen)
	}
	if len(qz.Questions) == 0 {
		return fmt.Errorf("quiz %q: at least one question is required", qz.Name)
	}
	for i, q := range qz.Questions {
		if err := q.validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func (q Question) validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is required")
	}
	switch q.Type {
	case TypeSingle, TypeMultiple:
		if len(q.Options) < 2 {
			return fmt.Errorf("%s-choice questions need at least 2 options", q.Type)
		}
		correct := len(q.CorrectIndices())
		if correct == 0 {
			return fmt.Errorf("%s-choice questions need at least one correct option", q.Type)
		}
		if q.Type == TypeSingle && correct != 1 {
			return fmt.Errorf("single-choice questions need exactly one correct option, got %d", correct)
		}
		for i, o := range q.Options {
			if o.Text == "" {
				return fmt.Errorf("option %d: text is required", i+1)
			}
		}
	case TypeText:
		if len(q.Options) != 0 {
			return fmt.Errorf("text questions must not carry options")
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}
