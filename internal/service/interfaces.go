package service

import (
	"context"

	"food-order/internal/domain"
	"food-order/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (int, error)
	FindUserByCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, name, category string, latitude, longitude float64) (int, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListRestaurantsByCategory(ctx context.Context, category string) ([]domain.Restaurant, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type DishRepository interface {
	CreateDish(ctx context.Context, restaurantID int, name, description string, price float64) (int, error)
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
}

type CatalogRepository interface {
	RestaurantRepository
	DishRepository
}

type PopularityRepository interface {
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	DishPopularity(ctx context.Context, restaurantID, limit int) ([]domain.DishPopularity, error)
}

type OrderRepository interface {
	PlaceOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) (int, error)
	ListOrdersForUser(ctx context.Context, userID int) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type PopularityStore interface {
	Increment(ctx context.Context, restaurantID, dishID, quantity int) error
	Top(ctx context.Context, restaurantID, limit int) ([]redis.Z, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, username, password string) (int, error)
	Login(ctx context.Context, username, password string) (int, bool, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List(ctx context.Context, category string) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	Categories(ctx context.Context) ([]string, error)
	Nearest(ctx context.Context, category string, from domain.Coordinates) (*domain.Restaurant, error)
}

type DishServiceInterface interface {
	Create(ctx context.Context, dish *domain.Dish) error
	List(ctx context.Context, restaurantID int) ([]domain.Dish, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, order *domain.Order, statedTotal *float64) error
	History(ctx context.Context, userID int) ([]domain.Order, error)
	Get(ctx context.Context, userID, orderID int) (*domain.Order, error)
	ReceiptQR(ctx context.Context, userID, orderID int) ([]byte, error)
}

type AnalyticsServiceInterface interface {
	TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishPopularity, error)
}

var (
	_ UserRepository       = (*storage.Store)(nil)
	_ CatalogRepository    = (*storage.Store)(nil)
	_ PopularityRepository = (*storage.Store)(nil)
	_ OrderRepository      = (*storage.Store)(nil)
	_ OrderPublisher       = (*storage.KafkaPublisher)(nil)
	_ PopularityStore      = (*storage.PopularityCache)(nil)
)
