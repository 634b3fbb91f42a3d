package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logger"
)

// DefaultKey is the hash holding the cached bank.
const DefaultKey = "catalog:questions"

// CatalogLoader fetches the question bank from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Question, error)
}

// CatalogRepository caches the question bank in Redis and falls back to a
// loader on a miss. Questions are stored as:
//
//	HSET catalog:questions {questionID} {question JSON}
//
// Redis being unavailable degrades to loading from the backing store.
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	key    string
	ttl    time.Duration
	sf     singleflight.Group
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		key:    DefaultKey,
		ttl:    ttl,
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) ([]domain.Question, error) {
	if qs, ok := r.fromCache(ctx); ok {
		return qs, nil
	}

	result, err, _ := r.sf.Do(r.key, func() (interface{}, error) {
		// Another caller may have filled the cache meanwhile.
		if qs, ok := r.fromCache(ctx); ok {
			return qs, nil
		}

		qs, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.store(ctx, qs); err != nil {
			logger.FromContext(ctx).WithPrefix("redis").WithField("key", r.key).Warn("cache fill failed: %v", err)
		}
		return qs, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *CatalogRepository) fromCache(ctx context.Context) ([]domain.Question, bool) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil || len(fields) == 0 {
		return nil, false
	}
	qs, err := decodeQuestions(fields)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("redis").WithField("key", r.key).Warn("discarding corrupt cache: %v", err)
		return nil, false
	}
	return qs, true
}

func (r *CatalogRepository) store(ctx context.Context, qs []domain.Question) error {
	values := make(map[string]interface{}, len(qs))
	for _, q := range qs {
		raw, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %d: %w", q.ID, err)
		}
		values[strconv.Itoa(q.ID)] = raw
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key)
	pipe.HSet(ctx, r.key, values)
	if ttl := r.ttlWithJitter(); ttl > 0 {
		pipe.Expire(ctx, r.key, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Invalidate drops the cached bank so the next read reloads it.
func (r *CatalogRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func decodeQuestions(fields map[string]string) ([]domain.Question, error) {
	qs := make([]domain.Question, 0, len(fields))
	for field, raw := range fields {
		var q domain.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, fmt.Errorf("decode question %s: %w", field, err)
		}
		if strconv.Itoa(q.ID) != field {
			return nil, fmt.Errorf("question %s stored under field %s", strconv.Itoa(q.ID), field)
		}
		qs = append(qs, q)
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	return qs, nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int64N(jitterMax+1))
}
