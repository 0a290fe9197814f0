package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"quizboard-service/internal/domain"
)

// BoardLoader fetches board content from a backing store (e.g., Postgres).
type BoardLoader interface {
	LoadBoard(ctx context.Context, name string) (domain.Board, error)
}

// BoardRepository caches full board JSON in Redis (key per board) and falls
// back to a loader on cache miss. The whole document is cached rather than a
// lightweight answers projection because sessions need every field, answered
// flags included, to build a playable board.
type BoardRepository struct {
	client *redis.Client
	loader BoardLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewBoardRepository(client *redis.Client, loader BoardLoader, ttl time.Duration) *BoardRepository {
	return &BoardRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BoardRepository) GetBoard(ctx context.Context, name string) (domain.Board, error) {
	key := r.key(name)

	if board, ok := r.cached(ctx, key); ok {
		return board, nil
	}

	result, err, _ := r.sf.Do(name, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if board, ok := r.cached(ctx, key); ok {
			return board, nil
		}

		board, err := r.loader.LoadBoard(ctx, name)
		if err != nil {
			return domain.Board{}, err
		}

		data, err := json.Marshal(board)
		if err != nil {
			return domain.Board{}, fmt.Errorf("marshal board: %w", err)
		}
		_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()

		return board, nil
	})
	if err != nil {
		return domain.Board{}, err
	}
	return result.(domain.Board), nil
}

func (r *BoardRepository) cached(ctx context.Context, key string) (domain.Board, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) || err != nil {
		return domain.Board{}, false
	}
	var board domain.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return domain.Board{}, false
	}
	return board, true
}

func (r *BoardRepository) key(name string) string {
	return "board:" + name
}

func (r *BoardRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
