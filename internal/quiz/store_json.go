package quiz

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

// jsonStore persists quizzes as a single JSON array on disk
// (<dir>/quizzes.json). Every operation reads the full file, applies the
// change and writes it back, so a failed write leaves the previous file
// contents intact.
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
	s := &jsonStore{path: filepath.Join(dir, "quizzes.json")}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write([]Quiz{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *jsonStore) read() ([]Quiz, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var out []Quiz
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return out, nil
}

func (s *jsonStore) write(quizzes []Quiz) error {
	if quizzes == nil {
		quizzes = []Quiz{}
	}
	buf, err := json.MarshalIndent(quizzes, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

func (s *jsonStore) List(ctx context.Context) ([]Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *jsonStore) Get(ctx context.Context, id string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quizzes, err := s.read()
	if err != nil {
		return Quiz{}, err
	}
	for _, qz := range quizzes {
		if qz.ID == id {
			return qz, nil
		}
	}
	return Quiz{}, ErrNotFound
}

func (s *jsonStore) Create(ctx context.Context, qz Quiz) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quizzes, err := s.read()
	if err != nil {
		return Quiz{}, err
	}
	for _, other := range quizzes {
		if other.Name == qz.Name {
			return Quiz{}, ErrNameExists
		}
	}
	now := time.Now().Unix()
	qz.ID = uuid.NewString()
	qz.CreatedAt = now
	qz.UpdatedAt = now
	quizzes = append(quizzes, qz)
	if err := s.write(quizzes); err != nil {
		return Quiz{}, err
	}
	return qz, nil
}

func (s *jsonStore) Update(ctx context.Context, id string, qz Quiz) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quizzes, err := s.read()
	if err != nil {
		return Quiz{}, err
	}
	for _, other := range quizzes {
		if other.ID != id && other.Name == qz.Name {
			return Quiz{}, ErrNameExists
		}
	}
	for i, old := range quizzes {
		if old.ID != id {
			continue
		}
		qz.ID = old.ID
		qz.CreatedAt = old.CreatedAt
		qz.UpdatedAt = time.Now().Unix()
		quizzes[i] = qz
		if err := s.write(quizzes); err != nil {
			return Quiz{}, err
		}
		return qz, nil
	}
	return Quiz{}, ErrNotFound
}

func (s *jsonStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quizzes, err := s.read()
	if err != nil {
		return err
	}
	kept := quizzes[:0:0]
	for _, qz := range quizzes {
		if qz.ID != id {
			kept = append(kept, qz)
		}
	}
	if len(kept) == len(quizzes) {
		return ErrNotFound
	}
	return s.write(kept)
}
