package memory

import (
	"context"
	"sync"

	"quizboard-service/internal/domain"
	"quizboard-service/internal/savegame"
)

// SaveStore is an in-memory implementation of app.SaveStore.
type SaveStore struct {
	mu     sync.RWMutex
	docs   map[string]savegame.Document
	latest string
}

func NewSaveStore() *SaveStore {
	return &SaveStore{docs: make(map[string]savegame.Document)}
}

func (s *SaveStore) Put(_ context.Context, doc savegame.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	s.latest = doc.ID
	return nil
}

func (s *SaveStore) Get(_ context.Context, id string) (savegame.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return savegame.Document{}, domain.ErrSaveNotFound
	}
	return doc, nil
}

func (s *SaveStore) Latest(_ context.Context) (savegame.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == "" {
		return savegame.Document{}, domain.ErrSaveNotFound
	}
	return s.docs[s.latest], nil
}
