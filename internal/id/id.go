package id

import (
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// NewRequestID creates a 16-character hex ID used to correlate the log lines
// of a single HTTP request.
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// Sequence hands out strictly increasing identifiers starting at 1.
// It is safe for concurrent use; no value is ever returned twice.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
