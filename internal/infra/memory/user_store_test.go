package memory

import (
	"context"
	"errors"
	"testing"

	"quizboard-service/internal/auth"
	"quizboard-service/internal/domain"
)

func TestUserStoreLookups(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.UserByUsername(ctx, "alice"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := store.SaveUser(ctx, auth.User{Username: "Alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	user, err := store.UserByUsername(ctx, "ALICE")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if user.Username != "Alice" {
		t.Fatalf("expected Alice, got %q", user.Username)
	}

	if _, err := store.UserByEmail(ctx, "ALICE@EXAMPLE.COM"); err != nil {
		t.Fatalf("expected case-insensitive email lookup, got %v", err)
	}
	if _, err := store.UserByEmail(ctx, "bob@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
