package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS assessments (
    id BIGSERIAL PRIMARY KEY,
    answers JSONB NOT NULL,
    total_score INTEGER NOT NULL,
    inattention_score INTEGER NOT NULL,
    hyperactivity_score INTEGER NOT NULL,
    impulsivity_score INTEGER NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_assessments_completed_at ON assessments (completed_at);
`

// PostgresStore persists assessments in a single assessments table with JSONB answers.
type PostgresStore struct {
	db   *sql.DB
	opts options
}

var _ Store = (*PostgresStore)(nil)

// NewPostgres connects with lib/pq, verifies the connection and migrates.
func NewPostgres(ctx context.Context, dsn string, opts ...Option) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s, err := NewPostgresFromDB(ctx, db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresFromDB wraps an existing handle and runs the migration.
func NewPostgresFromDB(ctx context.Context, db *sql.DB, opts ...Option) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &PostgresStore{
		db:   db,
		opts: buildOptions(opts),
	}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CreateAssessment(ctx context.Context, a *assessment.Assessment) error {
	answers, err := encodeAnswers(a.Answers)
	if err != nil {
		return err
	}
	completedAt := s.opts.stamp()

	var newID int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO assessments
		    (answers, total_score, inattention_score, hyperactivity_score, impulsivity_score, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		answers, a.Scores.Total, a.Scores.Inattention, a.Scores.Hyperactivity, a.Scores.Impulsivity,
		completedAt,
	).Scan(&newID)
	if err != nil {
		return err
	}

	a.ID = newID
	a.CompletedAt = completedAt
	return nil
}

const postgresSelect = `SELECT id, answers, total_score, inattention_score, hyperactivity_score, impulsivity_score, completed_at FROM assessments`

func (s *PostgresStore) GetAssessment(ctx context.Context, id int64) (*assessment.Assessment, error) {
	row := s.db.QueryRowContext(ctx, postgresSelect+" WHERE id = $1", id)
	a, err := scanPostgres(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PostgresStore) ListAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	rows, err := s.db.QueryContext(ctx, postgresSelect+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []*assessment.Assessment
	for rows.Next() {
		a, err := scanPostgres(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, a)
	}
	return all, rows.Err()
}

func (s *PostgresStore) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM assessments WHERE completed_at < $1", cutoff.UTC())
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func scanPostgres(row rowScanner) (*assessment.Assessment, error) {
	var (
		r           record
		answersJSON []byte
	)
	err := row.Scan(&r.ID, &answersJSON, &r.TotalScore, &r.InattentionScore,
		&r.HyperactivityScore, &r.ImpulsivityScore, &r.CompletedAt)
	if err != nil {
		return nil, err
	}

	answers, err := decodeAnswers(answersJSON)
	if err != nil {
		return nil, err
	}
	r.Answers = answers
	return r.toAssessment(), nil
}
