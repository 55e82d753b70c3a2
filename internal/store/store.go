package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists completed assessments. CreateAssessment assigns ID and
// CompletedAt on the passed record; IDs are unique and increase with every
// successful create. ListAssessments returns records ordered by ID.
type Store interface {
	CreateAssessment(ctx context.Context, a *assessment.Assessment) error
	GetAssessment(ctx context.Context, id int64) (*assessment.Assessment, error)
	ListAssessments(ctx context.Context) ([]*assessment.Assessment, error)
	// DeleteCompletedBefore removes records completed strictly before cutoff
	// and reports how many were removed.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error)
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Driver        string
	SQLitePath    string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open builds the Store selected by cfg.Driver.
func Open(ctx context.Context, cfg Config, opts ...Option) (Store, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemory(opts...), nil
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath, opts...)
	case DriverPostgres:
		return NewPostgres(ctx, cfg.PostgresDSN, opts...)
	case DriverRedis:
		return NewRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, opts...)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Option tunes a Store implementation.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used to stamp CompletedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stamp normalises completion times to UTC microseconds, the finest
// precision every backend round-trips.
func (o options) stamp() time.Time {
	return o.now().UTC().Truncate(time.Microsecond)
}
