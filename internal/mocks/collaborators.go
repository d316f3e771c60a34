package mocks

import (
	"context"

	"food-order/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

type PopularityStore struct {
	mock.Mock
}

func NewPopularityStore(t testingT) *PopularityStore {
	m := &PopularityStore{}
	register(&m.Mock, t)
	return m
}

func (_m *PopularityStore) Increment(ctx context.Context, restaurantID, dishID, quantity int) error {
	return _m.Called(ctx, restaurantID, dishID, quantity).Error(0)
}

func (_m *PopularityStore) Top(ctx context.Context, restaurantID, limit int) ([]redis.Z, error) {
	ret := _m.Called(ctx, restaurantID, limit)
	var r0 []redis.Z
	if v := ret.Get(0); v != nil {
		r0 = v.([]redis.Z)
	}
	return r0, ret.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(&m.Mock, t)
	return m
}

func (_m *QRGenerator) Generate(order *domain.Order) ([]byte, error) {
	ret := _m.Called(order)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

type SessionManager struct {
	mock.Mock
}

func NewSessionManager(t testingT) *SessionManager {
	m := &SessionManager{}
	register(&m.Mock, t)
	return m
}

func (_m *SessionManager) Start(ctx context.Context, userID int) (string, error) {
	ret := _m.Called(ctx, userID)
	return ret.String(0), ret.Error(1)
}

func (_m *SessionManager) UserID(ctx context.Context, token string) (int, bool, error) {
	ret := _m.Called(ctx, token)
	return ret.Int(0), ret.Bool(1), ret.Error(2)
}
