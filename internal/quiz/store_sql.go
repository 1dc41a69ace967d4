package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLStore works against sqlite and postgres through database/sql.
// Questions are stored JSON-encoded in a single column.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context) ([]Quiz, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,name,description,questions_json,created_at,updated_at FROM quizzes ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Quiz
	for rows.Next() {
		qz, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, qz)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,name,description,questions_json,created_at,updated_at FROM quizzes WHERE id=$1`, id)
	qz, err := scanQuiz(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, ErrNotFound
	}
	return qz, err
}

func (s *SQLStore) Create(ctx context.Context, qz Quiz) (Quiz, error) {
	if err := s.checkName(ctx, qz.Name, ""); err != nil {
		return Quiz{}, err
	}
	qj, err := json.Marshal(qz.Questions)
	if err != nil {
		return Quiz{}, err
	}
	now := time.Now().Unix()
	qz.ID = uuid.NewString()
	qz.CreatedAt = now
	qz.UpdatedAt = now
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id,name,description,questions_json,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		qz.ID, qz.Name, qz.Description, string(qj), qz.CreatedAt, qz.UpdatedAt)
	if err != nil {
		return Quiz{}, fmt.Errorf("insert quiz: %w", err)
	}
	return qz, nil
}

func (s *SQLStore) Update(ctx context.Context, id string, qz Quiz) (Quiz, error) {
	if err := s.checkName(ctx, qz.Name, id); err != nil {
		return Quiz{}, err
	}
	qj, err := json.Marshal(qz.Questions)
	if err != nil {
		return Quiz{}, err
	}
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE quizzes SET name=$1, description=$2, questions_json=$3, updated_at=$4 WHERE id=$5`,
		qz.Name, qz.Description, string(qj), now, id)
	if err != nil {
		return Quiz{}, fmt.Errorf("update quiz: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Quiz{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// checkName enforces the unique-name key. selfID excludes the quiz being
// updated from the check.
func (s *SQLStore) checkName(ctx context.Context, name, selfID string) error {
	var existing string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM quizzes WHERE name=$1`, name).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing != selfID {
		return ErrNameExists
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (Quiz, error) {
	var qz Quiz
	var qjson string
	if err := row.Scan(&qz.ID, &qz.Name, &qz.Description, &qjson, &qz.CreatedAt, &qz.UpdatedAt); err != nil {
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &qz.Questions); err != nil {
		return Quiz{}, fmt.Errorf("decode questions: %w", err)
	}
	return qz, nil
}
