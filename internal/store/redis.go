package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
)

const defaultRedisPrefix = "selfcheck:"

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces every key. Defaults to "selfcheck:".
	Prefix string
}

// RedisStore keeps each assessment as a JSON string plus two sorted-set
// indexes: one by ID for listing and one by completion time for retention.
type RedisStore struct {
	client *redis.Client
	prefix string
	opts   options
}

var _ Store = (*RedisStore)(nil)

func NewRedis(ctx context.Context, ro RedisOptions, opts ...Option) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     ro.Addr,
		Password: ro.Password,
		DB:       ro.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisFromClient(client, ro.Prefix, opts...), nil
}

// NewRedisFromClient wraps an existing client. An empty prefix selects the default.
func NewRedisFromClient(client *redis.Client, prefix string, opts ...Option) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		opts:   buildOptions(opts),
	}
}

func (s *RedisStore) seqKey() string         { return s.prefix + "assessment:seq" }
func (s *RedisStore) byIDKey() string        { return s.prefix + "assessments:by_id" }
func (s *RedisStore) byCompletedKey() string { return s.prefix + "assessments:by_completed" }

func (s *RedisStore) recordKey(id int64) string {
	return s.prefix + "assessment:" + strconv.FormatInt(id, 10)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) CreateAssessment(ctx context.Context, a *assessment.Assessment) error {
	newID, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("allocate id: %w", err)
	}
	completedAt := s.opts.stamp()

	r := toRecord(a)
	r.ID = newID
	r.CompletedAt = completedAt
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}

	member := strconv.FormatInt(newID, 10)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.recordKey(newID), payload, 0)
		pipe.ZAdd(ctx, s.byIDKey(), &redis.Z{Score: float64(newID), Member: member})
		pipe.ZAdd(ctx, s.byCompletedKey(), &redis.Z{Score: float64(completedAt.UnixMicro()), Member: member})
		return nil
	})
	if err != nil {
		return err
	}

	a.ID = newID
	a.CompletedAt = completedAt
	return nil
}

func (s *RedisStore) GetAssessment(ctx context.Context, id int64) (*assessment.Assessment, error) {
	raw, err := s.client.Get(ctx, s.recordKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (s *RedisStore) ListAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	members, err := s.client.ZRange(ctx, s.byIDKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = s.prefix + "assessment:" + m
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	all := make([]*assessment.Assessment, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			// Index entry without a record; skip until the next sweep cleans it.
			continue
		}
		a, err := decodeRecord([]byte(str))
		if err != nil {
			return nil, err
		}
		all = append(all, a)
	}
	return all, nil
}

func (s *RedisStore) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	// Exclusive upper bound: strictly before cutoff.
	members, err := s.client.ZRangeByScore(ctx, s.byCompletedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(cutoff.UnixMicro(), 10),
	}).Result()
	if err != nil {
		return 0, err
	}
	if len(members) == 0 {
		return 0, nil
	}

	keys := make([]string, len(members))
	zmembers := make([]interface{}, len(members))
	for i, m := range members {
		keys[i] = s.prefix + "assessment:" + m
		zmembers[i] = m
	}

	var deleted *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, s.byIDKey(), zmembers...)
		pipe.ZRem(ctx, s.byCompletedKey(), zmembers...)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(deleted.Val()), nil
}

func decodeRecord(raw []byte) (*assessment.Assessment, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode assessment: %w", err)
	}
	return r.toAssessment(), nil
}
