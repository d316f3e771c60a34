package service

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidCredentials = errors.New("username and password are required")

// AuthService keeps no session state; callers remember the returned user id.
type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (int, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return 0, ErrInvalidCredentials
	}
	return s.users.CreateUser(ctx, username, password)
}

// Login reports whether the credentials match a stored user. A mismatch is
// not an error.
func (s *AuthService) Login(ctx context.Context, username, password string) (int, bool, error) {
	user, err := s.users.FindUserByCredentials(ctx, username, password)
	if err != nil {
		return 0, false, err
	}
	if user == nil {
		return 0, false, nil
	}
	return user.ID, true, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
