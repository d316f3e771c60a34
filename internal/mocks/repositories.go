package mocks

import (
	"context"

	"food-order/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *UserRepository) CreateUser(ctx context.Context, username, password string) (int, error) {
	ret := _m.Called(ctx, username, password)
	return ret.Int(0), ret.Error(1)
}

func (_m *UserRepository) FindUserByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	ret := _m.Called(ctx, username, password)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

// CatalogRepository mocks restaurant and dish persistence together.
type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *CatalogRepository) CreateRestaurant(ctx context.Context, name, category string, latitude, longitude float64) (int, error) {
	ret := _m.Called(ctx, name, category, latitude, longitude)
	return ret.Int(0), ret.Error(1)
}

func (_m *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListRestaurantsByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, category)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateDish(ctx context.Context, restaurantID int, name, description string, price float64) (int, error) {
	ret := _m.Called(ctx, restaurantID, name, description, price)
	return ret.Int(0), ret.Error(1)
}

func (_m *CatalogRepository) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.Dish
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Dish)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) DishPopularity(ctx context.Context, restaurantID, limit int) ([]domain.DishPopularity, error) {
	ret := _m.Called(ctx, restaurantID, limit)
	var r0 []domain.DishPopularity
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.DishPopularity)
	}
	return r0, ret.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderRepository) PlaceOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) (int, error) {
	ret := _m.Called(ctx, order, items)
	return ret.Int(0), ret.Error(1)
}

func (_m *OrderRepository) ListOrdersForUser(ctx context.Context, userID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}
