package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
	"github.com/adhd-selfcheck/backend/internal/id"
)

// MemoryStore keeps assessments in process memory. Each instance is
// independent, so tests can build one per case.
type MemoryStore struct {
	mu          sync.RWMutex
	seq         id.Sequence
	assessments map[int64]*assessment.Assessment
	opts        options
}

var _ Store = (*MemoryStore)(nil)

func NewMemory(opts ...Option) *MemoryStore {
	return &MemoryStore{
		assessments: make(map[int64]*assessment.Assessment),
		opts:        buildOptions(opts),
	}
}

func (s *MemoryStore) CreateAssessment(_ context.Context, a *assessment.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.seq.Next()
	a.CompletedAt = s.opts.stamp()
	s.assessments[a.ID] = a.Clone()
	return nil
}

func (s *MemoryStore) GetAssessment(_ context.Context, id int64) (*assessment.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a.Clone(), nil
}

func (s *MemoryStore) ListAssessments(_ context.Context) ([]*assessment.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*assessment.Assessment, 0, len(s.assessments))
	for _, a := range s.assessments {
		all = append(all, a.Clone())
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (s *MemoryStore) DeleteCompletedBefore(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, a := range s.assessments {
		if a.CompletedAt.Before(cutoff) {
			delete(s.assessments, k)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
