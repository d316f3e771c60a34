package storage

import (
	"context"
	"errors"
	"fmt"

	"food-order/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// CreateUser stores a new user with a bcrypt hash of password. Usernames are
// not required to be unique.
func (s *Store) CreateUser(ctx context.Context, username, password string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, writeErr("hash password", err)
	}

	var id int
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(
		"INSERT INTO users (username, password) VALUES (?, ?) RETURNING id"),
		username, string(hash),
	).Scan(&id); err != nil {
		return 0, writeErr("insert user", err)
	}
	return id, nil
}

// FindUserByCredentials returns the first user whose username matches
// exactly and whose stored hash accepts password, or nil when none does.
func (s *Store) FindUserByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	var candidates []domain.User
	if err := s.db.SelectContext(ctx, &candidates, s.db.Rebind(
		"SELECT id, username, password FROM users WHERE username = ? ORDER BY id"), username); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	for i := range candidates {
		err := bcrypt.CompareHashAndPassword([]byte(candidates[i].PasswordHash), []byte(password))
		if err == nil {
			return &candidates[i], nil
		}
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, &DecodeError{Field: "users.password", Fragment: "<hash>", Err: err}
		}
	}
	return nil, nil
}

func (s *Store) AuthenticateUser(ctx context.Context, username, password string) (bool, error) {
	user, err := s.FindUserByCredentials(ctx, username, password)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
