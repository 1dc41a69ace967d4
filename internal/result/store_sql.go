package result

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLStore works against sqlite and postgres through database/sql. Details
// are stored JSON-encoded; listing sorts by date at query time.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,quiz_name,score,total,percentage,details_json,date FROM results ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,quiz_name,score,total,percentage,details_json,date FROM results WHERE id=$1`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	return r, err
}

func (s *SQLStore) Save(ctx context.Context, r Result) (Result, error) {
	dj, err := json.Marshal(r.Details)
	if err != nil {
		return Result{}, err
	}
	r.ID = uuid.NewString()
	r.Date = time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id,quiz_name,score,total,percentage,details_json,date) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		r.ID, r.QuizName, r.Score, r.Total, r.Percentage, string(dj), r.Date)
	if err != nil {
		return Result{}, fmt.Errorf("insert result: %w", err)
	}
	return r, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) DeleteAll(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var r Result
	var djson string
	if err := row.Scan(&r.ID, &r.QuizName, &r.Score, &r.Total, &r.Percentage, &djson, &r.Date); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(djson), &r.Details); err != nil {
		return Result{}, fmt.Errorf("decode details: %w", err)
	}
	return r, nil
}
