package mocks

import (
	"context"

	"food-order/internal/domain"

	"github.com/stretchr/testify/mock"
)

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t testingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *AuthServiceInterface) Register(ctx context.Context, username, password string) (int, error) {
	ret := _m.Called(ctx, username, password)
	return ret.Int(0), ret.Error(1)
}

func (_m *AuthServiceInterface) Login(ctx context.Context, username, password string) (int, bool, error) {
	ret := _m.Called(ctx, username, password)
	return ret.Int(0), ret.Bool(1), ret.Error(2)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderServiceInterface) Place(ctx context.Context, order *domain.Order, statedTotal *float64) error {
	return _m.Called(ctx, order, statedTotal).Error(0)
}

func (_m *OrderServiceInterface) History(ctx context.Context, userID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, userID, orderID)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ReceiptQR(ctx context.Context, userID, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, userID, orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

type AnalyticsServiceInterface struct {
	mock.Mock
}

func NewAnalyticsServiceInterface(t testingT) *AnalyticsServiceInterface {
	m := &AnalyticsServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *AnalyticsServiceInterface) TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishPopularity, error) {
	ret := _m.Called(ctx, restaurantID, limit)
	var r0 []domain.DishPopularity
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.DishPopularity)
	}
	return r0, ret.Error(1)
}
