package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pgColumns = []string{
	"id", "answers", "total_score", "inattention_score",
	"hyperactivity_score", "impulsivity_score", "completed_at",
}

func setupMockPostgres(t *testing.T, opts ...Option) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS assessments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := NewPostgresFromDB(context.Background(), db, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return s, mock
}

func TestPostgresStore_Create(t *testing.T) {
	clock := newFakeClock()
	s, mock := setupMockPostgres(t, WithClock(clock.Now))

	a := newAssessment(t, 2)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO assessments")).
		WithArgs("[2,2,2,2,2,2,2,2,2,2,2,2,2,2,2,2,2,2]", 36, 18, 10, 8, clock.Now()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, s.CreateAssessment(context.Background(), a))
	assert.Equal(t, int64(7), a.ID)
	assert.True(t, a.CompletedAt.Equal(clock.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get(t *testing.T) {
	s, mock := setupMockPostgres(t)
	completed := time.Date(2025, 3, 14, 18, 30, 0, 0, time.FixedZone("KST", 9*60*60))

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(pgColumns).
			AddRow(int64(7), []byte("[4,4,4,4,4,4,4,4,4,0,0,0,0,0,0,0,0,0]"), 36, 36, 0, 0, completed))

	got, err := s.GetAssessment(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, 36, got.Scores.Inattention)
	assert.Len(t, got.Answers, 18)
	assert.Equal(t, time.UTC, got.CompletedAt.Location())
	assert.True(t, got.CompletedAt.Equal(completed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetNotFound(t *testing.T) {
	s, mock := setupMockPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(pgColumns))

	_, err := s.GetAssessment(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List(t *testing.T) {
	s, mock := setupMockPostgres(t)
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(pgColumns).
			AddRow(int64(1), []byte("[0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]"), 0, 0, 0, 0, now).
			AddRow(int64(2), []byte("[1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1]"), 18, 9, 5, 4, now))

	all, err := s.ListAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, 18, all[1].Scores.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteCompletedBefore(t *testing.T) {
	s, mock := setupMockPostgres(t)
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM assessments WHERE completed_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := s.DeleteCompletedBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresFromDB_MigrationError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(assert.AnError)

	_, err = NewPostgresFromDB(context.Background(), db)
	assert.ErrorIs(t, err, assert.AnError)
}
