package retention

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
	"github.com/adhd-selfcheck/backend/internal/service"
	"github.com/adhd-selfcheck/backend/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingPurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (p *recordingPurger) PurgeCompletedBefore(_ context.Context, cutoff time.Time) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cutoffs = append(p.cutoffs, cutoff)
	return 1, p.err
}

func (p *recordingPurger) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cutoffs)
}

func TestRunOnce_Cutoff(t *testing.T) {
	p := &recordingPurger{}
	s := NewSweeper(p, 30, discard)
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, p.cutoffs, 1)
	assert.Equal(t, time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), p.cutoffs[0])
}

func TestRunOnce_Error(t *testing.T) {
	p := &recordingPurger{err: errors.New("db down")}
	s := NewSweeper(p, 1, discard)

	_, err := s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestRunOnce_DeletesExpiredAssessments(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	clock := now.Add(-40 * 24 * time.Hour)

	st := store.NewMemory(store.WithClock(func() time.Time { return clock }))
	svc := service.NewAssessmentService(st, discard)

	answers := make(scoring.AnswerVector, 18)
	_, _, err := svc.Submit(ctx, service.SubmitRequest{Answers: answers})
	require.NoError(t, err)
	clock = now.Add(-time.Hour)
	_, _, err = svc.Submit(ctx, service.SubmitRequest{Answers: answers})
	require.NoError(t, err)

	s := NewSweeper(svc, 30, discard)
	s.now = func() time.Time { return now }

	n, err := s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	left, err := st.ListAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, int64(2), left[0].ID)
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := NewSweeper(&recordingPurger{}, 1, discard)
	assert.Error(t, s.Start("every so often"))
}

func TestStart_RunsOnSchedule(t *testing.T) {
	p := &recordingPurger{}
	s := NewSweeper(p, 1, discard)

	require.NoError(t, s.Start("@every 1s"))
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return p.calls() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestStop_WithoutStart(t *testing.T) {
	s := NewSweeper(&recordingPurger{}, 1, discard)
	s.Stop(context.Background())
}
