package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"quizboard-service/internal/auth"
	"quizboard-service/internal/domain"
)

// UserStore keeps registered accounts in the users table via bun.
type UserStore struct {
	db *bun.DB
}

func NewUserStore(db *bun.DB) *UserStore {
	return &UserStore{db: db}
}

type userRow struct {
	bun.BaseModel `bun:"table:users"`

	Username     string `bun:"username,pk"`
	Email        string `bun:"email,notnull"`
	PasswordHash string `bun:"password_hash,notnull"`
	Score        int    `bun:"score,notnull,default:0"`
}

func (s *UserStore) SaveUser(ctx context.Context, user auth.User) error {
	row := userRow{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Score:        user.Score,
	}
	if _, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (username) DO UPDATE").
		Set("email = EXCLUDED.email").
		Set("password_hash = EXCLUDED.password_hash").
		Set("score = EXCLUDED.score").
		Exec(ctx); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *UserStore) UserByEmail(ctx context.Context, email string) (auth.User, error) {
	var row userRow
	err := s.db.NewSelect().
		Model(&row).
		Where("lower(email) = lower(?)", email).
		Scan(ctx)
	return toUser(row, err)
}

func (s *UserStore) UserByUsername(ctx context.Context, username string) (auth.User, error) {
	var row userRow
	err := s.db.NewSelect().
		Model(&row).
		Where("lower(username) = lower(?)", username).
		Scan(ctx)
	return toUser(row, err)
}

func toUser(row userRow, err error) (auth.User, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return auth.User{}, fmt.Errorf("query user: %w", err)
	}
	return auth.User{
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Score:        row.Score,
	}, nil
}
