// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
)

// completed_at holds Unix nanoseconds (UTC) so range deletes compare numerically.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS assessments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    answers TEXT NOT NULL,
    total_score INTEGER NOT NULL,
    inattention_score INTEGER NOT NULL,
    hyperactivity_score INTEGER NOT NULL,
    impulsivity_score INTEGER NOT NULL,
    completed_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_completed_at ON assessments(completed_at);
`

type SQLiteStore struct {
	db   *sql.DB
	opts options
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string, opts ...Option) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps
	// ":memory:" databases from splitting across the pool.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		opts: buildOptions(opts),
	}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateAssessment(ctx context.Context, a *assessment.Assessment) error {
	answers, err := encodeAnswers(a.Answers)
	if err != nil {
		return err
	}
	completedAt := s.opts.stamp()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO assessments
		    (answers, total_score, inattention_score, hyperactivity_score, impulsivity_score, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		answers, a.Scores.Total, a.Scores.Inattention, a.Scores.Hyperactivity, a.Scores.Impulsivity,
		completedAt.UnixNano(),
	)
	if err != nil {
		return err
	}

	newID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	a.ID = newID
	a.CompletedAt = completedAt
	return nil
}

const sqliteSelect = `SELECT id, answers, total_score, inattention_score, hyperactivity_score, impulsivity_score, completed_at FROM assessments`

func (s *SQLiteStore) GetAssessment(ctx context.Context, id int64) (*assessment.Assessment, error) {
	row := s.db.QueryRowContext(ctx, sqliteSelect+" WHERE id = ?", id)
	a, err := scanSQLite(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) ListAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelect+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []*assessment.Assessment
	for rows.Next() {
		a, err := scanSQLite(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, a)
	}
	return all, rows.Err()
}

func (s *SQLiteStore) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM assessments WHERE completed_at < ?", cutoff.UTC().UnixNano())
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLite(row rowScanner) (*assessment.Assessment, error) {
	var (
		r           record
		answersJSON string
		completedAt int64
	)
	err := row.Scan(&r.ID, &answersJSON, &r.TotalScore, &r.InattentionScore,
		&r.HyperactivityScore, &r.ImpulsivityScore, &completedAt)
	if err != nil {
		return nil, err
	}

	answers, err := decodeAnswers([]byte(answersJSON))
	if err != nil {
		return nil, err
	}
	r.Answers = answers
	r.CompletedAt = time.Unix(0, completedAt)
	return r.toAssessment(), nil
}
