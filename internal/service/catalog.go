package service

import (
	"context"
	"fmt"

	"food-order/internal/domain"
	"food-order/internal/storage"
)

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	id, err := s.repo.CreateRestaurant(ctx, rest.Name, rest.Category, rest.Latitude, rest.Longitude)
	if err != nil {
		return err
	}
	rest.ID = id
	return nil
}

// List returns all restaurants, or only those of category when it is set.
func (s *RestaurantService) List(ctx context.Context, category string) ([]domain.Restaurant, error) {
	if category == "" {
		return s.repo.ListRestaurants(ctx)
	}
	return s.repo.ListRestaurantsByCategory(ctx, category)
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *RestaurantService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// Nearest picks the restaurant closest to from, optionally within category.
func (s *RestaurantService) Nearest(ctx context.Context, category string, from domain.Coordinates) (*domain.Restaurant, error) {
	restaurants, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}

	var (
		nearest *domain.Restaurant
		best    float64
	)
	for i := range restaurants {
		d := from.DistanceTo(restaurants[i].Coordinates)
		if nearest == nil || d < best {
			nearest, best = &restaurants[i], d
		}
	}
	if nearest == nil {
		return nil, fmt.Errorf("restaurant near %.4f,%.4f in %q: %w", from.Latitude, from.Longitude, category, storage.ErrNotFound)
	}
	return nearest, nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish) error {
	id, err := s.repo.CreateDish(ctx, dish.RestaurantID, dish.Name, dish.Description, dish.Price)
	if err != nil {
		return err
	}
	dish.ID = id
	return nil
}

func (s *DishService) List(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, restaurantID)
}

var _ DishServiceInterface = (*DishService)(nil)
