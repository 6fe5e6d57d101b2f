package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"volcano-insurance-api/internal/auth"
	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/repository"

	"github.com/rs/zerolog/log"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// UserRepository stores API accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserService registers accounts and logs them in.
type UserService struct {
	repo   UserRepository
	tokens *auth.TokenManager
}

// NewUserService creates a user service.
func NewUserService(repo UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates an account and returns a token for it.
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username is required", ErrInvalidUser)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidUser)
	}
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidUser, MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("service: failed to create user: %w", err)
	}

	log.Info().Str("username", username).Msg("user registered")
	return s.tokens.Issue(user.ID, user.Username)
}

// Login checks the credentials and returns a fresh token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("service: failed to get user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, user.Username)
}
