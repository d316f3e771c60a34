package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"food-order/internal/domain"
)

func (s *Store) CreateRestaurant(ctx context.Context, name, category string, latitude, longitude float64) (int, error) {
	var id int
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(
		"INSERT INTO restaurants (name, category, latitude, longitude) VALUES (?, ?, ?, ?) RETURNING id"),
		name, category, latitude, longitude,
	).Scan(&id); err != nil {
		return 0, writeErr("insert restaurant", err)
	}
	return id, nil
}

// ListRestaurants returns every restaurant. Callers must not rely on order.
func (s *Store) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants := []domain.Restaurant{}
	if err := s.db.SelectContext(ctx, &restaurants,
		"SELECT id, name, category, latitude, longitude FROM restaurants"); err != nil {
		return nil, fmt.Errorf("select restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *Store) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := s.db.GetContext(ctx, &rest, s.db.Rebind(
		"SELECT id, name, category, latitude, longitude FROM restaurants WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select restaurant %d: %w", id, err)
	}
	return &rest, nil
}

// ListRestaurantsByCategory returns the restaurants whose category matches
// exactly, ordered by id.
func (s *Store) ListRestaurantsByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	restaurants := []domain.Restaurant{}
	if err := s.db.SelectContext(ctx, &restaurants, s.db.Rebind(
		"SELECT id, name, category, latitude, longitude FROM restaurants WHERE category = ? ORDER BY id"),
		category); err != nil {
		return nil, fmt.Errorf("select restaurants in %q: %w", category, err)
	}
	return restaurants, nil
}

// ListCategories returns the distinct categories of stored restaurants in
// alphabetical order.
func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := s.db.SelectContext(ctx, &categories,
		"SELECT DISTINCT category FROM restaurants ORDER BY category"); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}
