package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quizboard-service/internal/domain"
	"quizboard-service/internal/savegame"
)

const latestKey = "savegame:latest"

// SaveStore persists save documents as JSON values in Redis with a TTL, plus
// a pointer to the most recent save so a player can resume without knowing
// the id.
type SaveStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSaveStore(client *redis.Client, ttl time.Duration) *SaveStore {
	return &SaveStore{client: client, ttl: ttl}
}

func (s *SaveStore) Put(ctx context.Context, doc savegame.Document) error {
	data, err := savegame.Encode(doc)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(doc.ID), data, s.ttl)
	pipe.Set(ctx, latestKey, doc.ID, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write save document: %w", err)
	}
	return nil
}

func (s *SaveStore) Get(ctx context.Context, id string) (savegame.Document, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return savegame.Document{}, domain.ErrSaveNotFound
	}
	if err != nil {
		return savegame.Document{}, fmt.Errorf("read save document: %w", err)
	}
	return savegame.Decode(data)
}

func (s *SaveStore) Latest(ctx context.Context) (savegame.Document, error) {
	id, err := s.client.Get(ctx, latestKey).Result()
	if errors.Is(err, redis.Nil) {
		return savegame.Document{}, domain.ErrSaveNotFound
	}
	if err != nil {
		return savegame.Document{}, fmt.Errorf("read latest pointer: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *SaveStore) key(id string) string {
	return "savegame:" + id
}
