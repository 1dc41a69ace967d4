package quiz

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("quiz not found")
	ErrNameExists = errors.New("quiz name already in use")
)

// Store is the quiz repository. Implementations: memory, jsonfile, sql.
type Store interface {
	List(ctx context.Context) ([]Quiz, error)
	Get(ctx context.Context, id string) (Quiz, error)
	Create(ctx context.Context, qz Quiz) (Quiz, error)
	Update(ctx context.Context, id string, qz Quiz) (Quiz, error)
	// Delete removes a quiz. Results referencing it by name are untouched.
	Delete(ctx context.Context, id string) error
}
