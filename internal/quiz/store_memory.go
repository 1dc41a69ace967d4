package quiz

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
}

// NewMemoryStore keeps quizzes in process memory. Used for tests and as the
// non-persistent deployment mode.
func NewMemoryStore() Store {
	return &memoryStore{quizzes: map[string]Quiz{}}
}

func (m *memoryStore) List(ctx context.Context) ([]Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Quiz, 0, len(m.quizzes))
	for _, qz := range m.quizzes {
		out = append(out, qz)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	qz, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return qz, nil
}

func (m *memoryStore) Create(ctx context.Context, qz Quiz) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.quizzes {
		if other.Name == qz.Name {
			return Quiz{}, ErrNameExists
		}
	}
	now := time.Now().Unix()
	qz.ID = uuid.NewString()
	qz.CreatedAt = now
	qz.UpdatedAt = now
	m.quizzes[qz.ID] = qz
	return qz, nil
}

func (m *memoryStore) Update(ctx context.Context, id string, qz Quiz) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	for _, other := range m.quizzes {
		if other.ID != id && other.Name == qz.Name {
			return Quiz{}, ErrNameExists
		}
	}
	qz.ID = old.ID
	qz.CreatedAt = old.CreatedAt
	qz.UpdatedAt = time.Now().Unix()
	m.quizzes[id] = qz
	return qz, nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quizzes[id]; !ok {
		return ErrNotFound
	}
	delete(m.quizzes, id)
	return nil
}
