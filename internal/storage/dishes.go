package storage

import (
	"context"
	"fmt"

	"food-order/internal/domain"
)

func (s *Store) CreateDish(ctx context.Context, restaurantID int, name, description string, price float64) (int, error) {
	var id int
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(
		"INSERT INTO dishes (restaurant_id, name, description, price) VALUES (?, ?, ?, ?) RETURNING id"),
		restaurantID, name, description, price,
	).Scan(&id); err != nil {
		return 0, writeErr("insert dish", err)
	}
	return id, nil
}

// ListDishes returns the menu of one restaurant, empty when it has none.
func (s *Store) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	dishes := []domain.Dish{}
	if err := s.db.SelectContext(ctx, &dishes, s.db.Rebind(`
		SELECT id, restaurant_id, name, description, price
		FROM dishes
		WHERE restaurant_id = ?
		ORDER BY id`), restaurantID); err != nil {
		return nil, fmt.Errorf("select dishes of restaurant %d: %w", restaurantID, err)
	}
	return dishes, nil
}

// DishPopularity ranks a restaurant's dishes by total ordered quantity.
func (s *Store) DishPopularity(ctx context.Context, restaurantID, limit int) ([]domain.DishPopularity, error) {
	ranked := []domain.DishPopularity{}
	if err := s.db.SelectContext(ctx, &ranked, s.db.Rebind(`
		SELECT d.id AS dish_id, d.name AS dish_name, d.restaurant_id AS restaurant_id,
			SUM(oi.quantity) AS score
		FROM dishes d
		JOIN order_items oi ON oi.dish_id = d.id
		WHERE d.restaurant_id = ?
		GROUP BY d.id, d.name, d.restaurant_id
		ORDER BY score DESC, d.id
		LIMIT ?`), restaurantID, limit); err != nil {
		return nil, fmt.Errorf("select popularity of restaurant %d: %w", restaurantID, err)
	}
	return ranked, nil
}
