package seed_test

import (
	"context"
	"testing"

	"github.com/quizado/quizado/internal/quiz"
	"github.com/quizado/quizado/internal/seed"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := quiz.NewMemoryStore()

	n, err := seed.Quizzes(ctx, store)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n == 0 {
		t.Fatal("empty store should get demo quizzes")
	}

	again, err := seed.Quizzes(ctx, store)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if again != 0 {
		t.Errorf("non-empty store reseeded %d quizzes", again)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != n {
		t.Errorf("store holds %d quizzes, want %d", len(list), n)
	}
	for _, qz := range list {
		if err := qz.Validate(); err != nil {
			t.Errorf("seeded quiz %q invalid: %v", qz.Name, err)
		}
	}
}
