// Package auth implements the registration/login collaborator that supplies
// player identities to game sessions. The game core never validates
// credentials itself.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"quizboard-service/internal/domain"
)

// User is one registered account. PasswordHash is a bcrypt hash; the clear
// text password never reaches a store.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Score        int    `json:"score"`
}

// UserStore abstracts where accounts live (memory, Postgres).
type UserStore interface {
	SaveUser(ctx context.Context, user User) error
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
}

// Validation failures reported by Register.
var (
	ErrBlankUsername      = errors.New("username must not be blank")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNeedsDigit = errors.New("password must contain at least one digit")
	ErrPasswordNeedsSpecial = errors.New("password must contain at least one special character")
	ErrPasswordNeedsUpper = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNeedsLower = errors.New("password must contain at least one lowercase letter")
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z]+\.(com|net|ca)$`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*()_+{}\[\]:;<>,.?~/-]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
)

// Service handles registration and login over a UserStore.
type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Register validates and stores a new account. Duplicate usernames and
// emails are rejected case-insensitively.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return User{}, ErrBlankUsername
	}
	if !emailPattern.MatchString(email) {
		return User{}, ErrInvalidEmail
	}
	if err := ValidatePassword(password); err != nil {
		return User{}, err
	}

	if _, err := s.store.UserByUsername(ctx, username); err == nil {
		return User{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return User{}, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.store.UserByEmail(ctx, email); err == nil {
		return User{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return User{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Login verifies an email/password pair and returns the matching account.
// Missing users and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ValidatePassword applies the registration password policy.
func ValidatePassword(password string) error {
	switch {
	case len(password) < 8:
		return ErrPasswordTooShort
	case !digitPattern.MatchString(password):
		return ErrPasswordNeedsDigit
	case !specialPattern.MatchString(password):
		return ErrPasswordNeedsSpecial
	case !upperPattern.MatchString(password):
		return ErrPasswordNeedsUpper
	case !lowerPattern.MatchString(password):
		return ErrPasswordNeedsLower
	}
	return nil
}
