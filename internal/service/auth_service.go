package service

import (
	"context"
	"fmt"

	"skycast/internal/auth"
	apperrors "skycast/internal/errors"
	"skycast/internal/model"
	"skycast/internal/repository"
)

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token    string
	Username string
	Email    string
	Roles    model.Roles
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.Hasher
	jwt    *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher auth.Hasher, jwt *auth.JWTService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user with a hashed password and issues a session token.
func (s *authService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: check username: %v", apperrors.ErrStorage, err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: check email: %v", apperrors.ErrStorage, err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        model.Roles{model.RoleUser},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: create user: %v", apperrors.ErrStorage, err)
	}

	token, err := s.jwt.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	}, nil
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password yield the identical error so responses cannot be used
// to enumerate usernames.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	}, nil
}
