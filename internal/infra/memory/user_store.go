package memory

import (
	"context"
	"strings"
	"sync"

	"quizboard-service/internal/auth"
	"quizboard-service/internal/domain"
)

// UserStore keeps registered users in memory; the auth service uses it in
// tests and when no database is configured.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]auth.User // keyed by lowercased username
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]auth.User)}
}

func (s *UserStore) SaveUser(_ context.Context, user auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.ToLower(user.Username)] = user
	return nil
}

func (s *UserStore) UserByEmail(_ context.Context, email string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return auth.User{}, domain.ErrUserNotFound
}

func (s *UserStore) UserByUsername(_ context.Context, username string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[strings.ToLower(username)]
	if !ok {
		return auth.User{}, domain.ErrUserNotFound
	}
	return user, nil
}
