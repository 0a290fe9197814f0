package auth_test

import (
	"context"
	"errors"
	"testing"

	"quizboard-service/internal/auth"
	"quizboard-service/internal/domain"
	"quizboard-service/internal/infra/memory"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service := auth.NewService(memory.NewUserStore())

	user, err := service.Register(ctx, "alice", "alice@example.com", "Sup3r-secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "Sup3r-secret" || user.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}

	logged, err := service.Login(ctx, "alice@example.com", "Sup3r-secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Username != "alice" {
		t.Fatalf("expected alice, got %q", logged.Username)
	}

	if _, err := service.Login(ctx, "alice@example.com", "wrong-pass1A!"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody@example.com", "Sup3r-secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	service := auth.NewService(memory.NewUserStore())

	if _, err := service.Register(ctx, "alice", "alice@example.com", "Sup3r-secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Register(ctx, "ALICE", "other@example.com", "Sup3r-secret"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected duplicate username, got %v", err)
	}
	if _, err := service.Register(ctx, "bob", "alice@example.com", "Sup3r-secret"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected duplicate email, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	service := auth.NewService(memory.NewUserStore())

	cases := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"blank username", " ", "a@b.com", "Sup3r-secret", auth.ErrBlankUsername},
		{"bad email domain", "alice", "a@b.org", "Sup3r-secret", auth.ErrInvalidEmail},
		{"no at sign", "alice", "example.com", "Sup3r-secret", auth.ErrInvalidEmail},
		{"short password", "alice", "a@b.com", "Ab1!", auth.ErrPasswordTooShort},
		{"no digit", "alice", "a@b.com", "Abcdefg!", auth.ErrPasswordNeedsDigit},
		{"no special", "alice", "a@b.com", "Abcdefg1", auth.ErrPasswordNeedsSpecial},
		{"no upper", "alice", "a@b.com", "abcdefg1!", auth.ErrPasswordNeedsUpper},
		{"no lower", "alice", "a@b.com", "ABCDEFG1!", auth.ErrPasswordNeedsLower},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(ctx, tc.username, tc.email, tc.password)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
