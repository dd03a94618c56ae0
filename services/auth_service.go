package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"menuapi-backend/models"
	"menuapi-backend/repository"
	"menuapi-backend/utils"
)

const minPasswordLength = 6

type AuthService struct {
	users  repository.UserStore
	secret string
	ttl    time.Duration
}

func NewAuthService(users repository.UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Register creates a user; the password is hashed by the model hook on insert.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidBody)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidBody, minPasswordLength)
	}

	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: email %s already in use", ErrConflict, email)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err, "find user")
	}

	user := &models.User{Name: name, Email: email, Password: password}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, storeError(err, "create user")
	}
	return user, nil
}

// Login checks the credentials and returns the user with a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidBody)
	}

	user, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrUnauthorized
	}
	if err != nil {
		return nil, "", storeError(err, "find user")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrUnauthorized
	}

	token, err := utils.GenerateToken(s.secret, s.ttl, user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}
