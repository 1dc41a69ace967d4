package result

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// jsonStore keeps the whole history in <dir>/results.json. The file is
// rewritten whole on every mutation; a failed write leaves the old contents
// in place and the caller's in-memory record untouched.
type jsonStore struct {
	mu   sync.Mutex
	path string
}

func NewJSONStore(dir string) (Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &jsonStore{path: filepath.Join(dir, "results.json")}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write([]Result{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *jsonStore) read() ([]Result, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var out []Result
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return out, nil
}

func (s *jsonStore) write(results []Result) error {
	if results == nil {
		results = []Result{}
	}
	buf, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

func (s *jsonStore) List(ctx context.Context) ([]Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, err := s.read()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(results)
	return results, nil
}

func (s *jsonStore) Get(ctx context.Context, id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, err := s.read()
	if err != nil {
		return Result{}, err
	}
	for _, r := range results {
		if r.ID == id {
			return r, nil
		}
	}
	return Result{}, ErrNotFound
}

func (s *jsonStore) Save(ctx context.Context, r Result) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, err := s.read()
	if err != nil {
		return Result{}, err
	}
	r.ID = uuid.NewString()
	r.Date = time.Now().UTC().Format(time.RFC3339Nano)
	results = append(results, r)
	if err := s.write(results); err != nil {
		return Result{}, err
	}
	return r, nil
}

func (s *jsonStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, err := s.read()
	if err != nil {
		return err
	}
	kept := results[:0:0]
	for _, r := range results {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(results) {
		return ErrNotFound
	}
	return s.write(kept)
}

func (s *jsonStore) DeleteAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, err := s.read()
	if err != nil {
		return 0, err
	}
	if err := s.write([]Result{}); err != nil {
		return 0, err
	}
	return len(results), nil
}
