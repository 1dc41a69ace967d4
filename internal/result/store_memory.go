package result

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu      sync.RWMutex
	results map[string]Result
}

func NewMemoryStore() Store {
	return &memoryStore{results: map[string]Result{}}
}

func (m *memoryStore) List(ctx context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, len(m.results))
	for _, r := range m.results {
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[id]
	if !ok {
		return Result{}, ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) Save(ctx context.Context, r Result) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	r.Date = time.Now().UTC().Format(time.RFC3339Nano)
	m.results[r.ID] = r
	return r, nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[id]; !ok {
		return ErrNotFound
	}
	delete(m.results, id)
	return nil
}

func (m *memoryStore) DeleteAll(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.results)
	m.results = map[string]Result{}
	return n, nil
}

// sortNewestFirst orders by date descending at the point of listing; storage
// order is not relied on. ID breaks ties for a stable order.
func sortNewestFirst(rs []Result) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Date != rs[j].Date {
			return rs[i].Date > rs[j].Date
		}
		return rs[i].ID > rs[j].ID
	})
}
