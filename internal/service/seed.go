package service

import (
	"context"
	"fmt"
	"log"

	"food-order/internal/domain"
)

type seedDish struct {
	Name        string
	Description string
	Price       float64
}

var seedRestaurants = []domain.Restaurant{
	{Name: "Sushi Place", Category: "Суши", Coordinates: domain.Coordinates{Latitude: 53.9, Longitude: 27.5667}},
	{Name: "Pizza House", Category: "Пицца", Coordinates: domain.Coordinates{Latitude: 53.91, Longitude: 27.57}},
	{Name: "Burger Town", Category: "Бургеры", Coordinates: domain.Coordinates{Latitude: 53.92, Longitude: 27.58}},
	{Name: "Asia Wok", Category: "Азиатская кухня", Coordinates: domain.Coordinates{Latitude: 53.93, Longitude: 27.59}},
	{Name: "Coffee Point", Category: "Кофейня", Coordinates: domain.Coordinates{Latitude: 53.94, Longitude: 27.565}},
	{Name: "Vegan Life", Category: "Вегетарианское", Coordinates: domain.Coordinates{Latitude: 53.95, Longitude: 27.56}},
	{Name: "Steak House", Category: "Стейки", Coordinates: domain.Coordinates{Latitude: 53.96, Longitude: 27.55}},
}

// Menus by restaurant category.
var seedMenus = map[string][]seedDish{
	"Суши": {
		{"Филадельфия", "Ролл с лососем и сыром", 12.5},
		{"Калифорния", "Ролл с крабом и авокадо", 11.0},
	},
	"Пицца": {
		{"Маргарита", "Пицца с томатами и сыром", 9.0},
		{"Пепперони", "Пицца с пепперони и сыром", 10.5},
	},
	"Бургеры": {
		{"Чизбургер", "Бургер с сыром и говядиной", 8.0},
		{"Вегги бургер", "Бургер с овощами", 7.5},
	},
	"Азиатская кухня": {
		{"Лапша удон", "Удон с курицей и овощами", 10.0},
		{"Том Ям", "Острый суп с морепродуктами", 13.0},
	},
	"Кофейня": {
		{"Капучино", "Кофе с молоком", 3.5},
		{"Эклер", "Французская выпечка", 2.5},
	},
	"Вегетарианское": {
		{"Салат с тофу", "Салат с овощами и тофу", 7.0},
		{"Смузи", "Фруктовый смузи", 4.0},
	},
	"Стейки": {
		{"Рибай", "Стейк из мраморной говядины", 18.0},
		{"Стейк из лосося", "Лосось на гриле", 16.0},
	},
}

// Seeder loads the reference catalog into an empty store.
type Seeder struct {
	repo CatalogRepository
}

func NewSeeder(repo CatalogRepository) *Seeder {
	return &Seeder{repo: repo}
}

// Seed inserts the reference restaurants when there are none, then fills in
// the menu of every restaurant that has no dishes yet.
func (s *Seeder) Seed(ctx context.Context) error {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return err
	}
	if len(restaurants) == 0 {
		for _, rest := range seedRestaurants {
			if _, err := s.repo.CreateRestaurant(ctx, rest.Name, rest.Category, rest.Latitude, rest.Longitude); err != nil {
				return fmt.Errorf("seed restaurant %q: %w", rest.Name, err)
			}
		}
		log.Printf("Seeded %d restaurants", len(seedRestaurants))

		if restaurants, err = s.repo.ListRestaurants(ctx); err != nil {
			return err
		}
	}

	for _, rest := range restaurants {
		dishes, err := s.repo.ListDishes(ctx, rest.ID)
		if err != nil {
			return err
		}
		if len(dishes) > 0 {
			continue
		}
		for _, dish := range seedMenus[rest.Category] {
			if _, err := s.repo.CreateDish(ctx, rest.ID, dish.Name, dish.Description, dish.Price); err != nil {
				return fmt.Errorf("seed dish %q: %w", dish.Name, err)
			}
		}
	}
	return nil
}
