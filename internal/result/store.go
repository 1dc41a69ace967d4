package result

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("result not found")

// Store persists attempt records. Records are append-only: saved once,
// never updated, deleted individually or in bulk.
type Store interface {
	// List returns all results, newest first.
	List(ctx context.Context) ([]Result, error)
	Get(ctx context.Context, id string) (Result, error)
	// Save assigns id and date and persists the record.
	Save(ctx context.Context, r Result) (Result, error)
	Delete(ctx context.Context, id string) error
	// DeleteAll clears the history and reports how many records went.
	DeleteAll(ctx context.Context) (int, error)
}
