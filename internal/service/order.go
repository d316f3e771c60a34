package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"food-order/internal/domain"
	"food-order/internal/storage"
)

var (
	ErrInvalidOrder   = errors.New("invalid order payload")
	ErrInvalidPayment = errors.New("unknown payment method")
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

// NewOrderService accepts a nil publisher or QR generator.
func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Place stores the order with its items atomically. The total is
// statedTotal when the caller gives one, otherwise the items' subtotal.
func (s *OrderService) Place(ctx context.Context, order *domain.Order, statedTotal *float64) error {
	if order.UserID <= 0 || order.RestaurantID <= 0 || len(order.Items) == 0 {
		return ErrInvalidOrder
	}
	for _, item := range order.Items {
		if item.DishID <= 0 || item.Quantity <= 0 {
			return fmt.Errorf("%w: dish %d quantity %d", ErrInvalidOrder, item.DishID, item.Quantity)
		}
	}
	if !order.Payment.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPayment, order.Payment)
	}
	if statedTotal != nil {
		if *statedTotal < 0 {
			return fmt.Errorf("%w: negative total %.2f", ErrInvalidOrder, *statedTotal)
		}
		order.TotalPrice = *statedTotal
	} else {
		order.TotalPrice = domain.Subtotal(order.Items)
	}

	id, err := s.repo.PlaceOrder(ctx, *order, order.Items)
	if err != nil {
		return err
	}
	order.ID = id
	order.Status = domain.OrderStatusNew
	for i := range order.Items {
		order.Items[i].OrderID = id
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, domain.OrderEvent{
			Type:         domain.EventOrderPlaced,
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			TotalPrice:   order.TotalPrice,
			Items:        order.Items,
			Timestamp:    time.Now(),
		}); err != nil {
			log.Printf("ERROR: publish order %d: %v", order.ID, err)
		}
	}
	return nil
}

func (s *OrderService) History(ctx context.Context, userID int) ([]domain.Order, error) {
	return s.repo.ListOrdersForUser(ctx, userID)
}

// Get returns the order only to the user who placed it. Orders of other
// users are reported as not found.
func (s *OrderService) Get(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %d of user %d: %w", orderID, userID, storage.ErrNotFound)
	}
	return order, nil
}

func (s *OrderService) ReceiptQR(ctx context.Context, userID, orderID int) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, errors.New("receipt QR codes are not configured")
	}
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(order)
}

var _ OrderServiceInterface = (*OrderService)(nil)
