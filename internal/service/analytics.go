package service

import (
	"context"
	"log"
	"strconv"

	"food-order/internal/domain"
)

type AnalyticsService struct {
	repo  PopularityRepository
	cache PopularityStore
}

// NewAnalyticsService accepts a nil cache; the store is then always used.
func NewAnalyticsService(repo PopularityRepository, cache PopularityStore) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache}
}

// TopDishes ranks a restaurant's dishes by ordered quantity, best first.
func (s *AnalyticsService) TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishPopularity, error) {
	if limit <= 0 {
		limit = 5
	}
	if s.cache == nil {
		return s.repo.DishPopularity(ctx, restaurantID, limit)
	}

	ranked, err := s.cache.Top(ctx, restaurantID, limit)
	if err != nil {
		log.Printf("ERROR: popularity cache for restaurant %d: %v", restaurantID, err)
		return s.repo.DishPopularity(ctx, restaurantID, limit)
	}
	if len(ranked) == 0 {
		return s.repo.DishPopularity(ctx, restaurantID, limit)
	}

	dishes, err := s.repo.ListDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(dishes))
	for _, dish := range dishes {
		names[dish.ID] = dish.Name
	}

	top := []domain.DishPopularity{}
	for _, z := range ranked {
		member, _ := z.Member.(string)
		dishID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		name, ok := names[dishID]
		if !ok {
			continue
		}
		top = append(top, domain.DishPopularity{
			DishID:       dishID,
			DishName:     name,
			RestaurantID: restaurantID,
			Score:        z.Score,
		})
	}
	return top, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
