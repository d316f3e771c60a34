package storage

import (
	"context"
	"database/sql"
	"fmt"

	"food-order/internal/domain"

	"github.com/jmoiron/sqlx"
)

const (
	insertOrderQuery = `INSERT INTO orders (user_id, restaurant_id, address, comment, payment, status, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`
	insertOrderItemQuery = `INSERT INTO order_items (order_id, dish_id, quantity, price)
		VALUES (?, ?, ?, ?) RETURNING id`

	// One row per item; orders without items yield a single row of NULL item columns.
	selectOrdersQuery = `
		SELECT o.id, o.user_id, o.restaurant_id, o.address, o.comment, o.payment, o.status, o.total_price,
			oi.id, oi.dish_id, oi.quantity, oi.price
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id`
)

func (s *Store) insertOrder(ctx context.Context, q sqlx.QueryerContext, order domain.Order) (int, error) {
	var id int
	if err := q.QueryRowxContext(ctx, s.db.Rebind(insertOrderQuery),
		order.UserID, order.RestaurantID, order.Address, order.Comment,
		string(order.Payment), string(domain.OrderStatusNew), order.TotalPrice,
	).Scan(&id); err != nil {
		return 0, writeErr("insert order", err)
	}
	return id, nil
}

func (s *Store) insertOrderItem(ctx context.Context, q sqlx.QueryerContext, item domain.OrderItem) (int, error) {
	var id int
	if err := q.QueryRowxContext(ctx, s.db.Rebind(insertOrderItemQuery),
		item.OrderID, item.DishID, item.Quantity, item.Price,
	).Scan(&id); err != nil {
		return 0, writeErr(fmt.Sprintf("insert item of order %d", item.OrderID), err)
	}
	return id, nil
}

// CreateOrder inserts a single order with the initial status. TotalPrice is
// stored as given.
func (s *Store) CreateOrder(ctx context.Context, userID, restaurantID int, address, comment string, payment domain.PaymentMethod, totalPrice float64) (int, error) {
	return s.insertOrder(ctx, s.db, domain.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		Address:      address,
		Comment:      comment,
		Payment:      payment,
		TotalPrice:   totalPrice,
	})
}

func (s *Store) CreateOrderItem(ctx context.Context, orderID, dishID, quantity int, price float64) (int, error) {
	return s.insertOrderItem(ctx, s.db, domain.OrderItem{
		OrderID:  orderID,
		DishID:   dishID,
		Quantity: quantity,
		Price:    price,
	})
}

// PlaceOrder stores an order and all of its items in one transaction.
// Either everything is committed or nothing is.
func (s *Store) PlaceOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, writeErr("begin order transaction", err)
	}
	defer tx.Rollback()

	orderID, err := s.insertOrder(ctx, tx, order)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		item.OrderID = orderID
		if _, err := s.insertOrderItem(ctx, tx, item); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, writeErr("commit order transaction", err)
	}
	return orderID, nil
}

// ListOrdersForUser returns the user's orders, each with its items, in
// insertion order.
func (s *Store) ListOrdersForUser(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(selectOrdersQuery+`
		WHERE o.user_id = ?
		ORDER BY o.id, oi.id`), userID)
	if err != nil {
		return nil, fmt.Errorf("select orders of user %d: %w", userID, err)
	}
	defer rows.Close()

	return groupOrderRows(rows)
}

func (s *Store) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(selectOrdersQuery+`
		WHERE o.id = ?
		ORDER BY oi.id`), orderID)
	if err != nil {
		return nil, fmt.Errorf("select order %d: %w", orderID, err)
	}
	defer rows.Close()

	orders, err := groupOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	return &orders[0], nil
}

type orderItemColumns struct {
	id       sql.NullInt64
	dishID   sql.NullInt64
	quantity sql.NullInt64
	price    sql.NullFloat64
}

// groupOrderRows folds joined rows into orders, keeping the first-seen order
// of parents and the row order of their items.
func groupOrderRows(rows *sqlx.Rows) ([]domain.Order, error) {
	orders := []domain.Order{}
	index := map[int]int{}

	for rows.Next() {
		var (
			order  domain.Order
			status string
			item   orderItemColumns
		)
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.RestaurantID, &order.Address, &order.Comment,
			&order.Payment, &status, &order.TotalPrice,
			&item.id, &item.dishID, &item.quantity, &item.price,
		); err != nil {
			return nil, &DecodeError{Field: "orders row", Err: err}
		}

		pos, seen := index[order.ID]
		if !seen {
			order.Status = domain.OrderStatus(status)
			order.Items = []domain.OrderItem{}
			orders = append(orders, order)
			pos = len(orders) - 1
			index[order.ID] = pos
		}

		if !item.id.Valid {
			continue
		}
		orders[pos].Items = append(orders[pos].Items, domain.OrderItem{
			ID:       int(item.id.Int64),
			OrderID:  order.ID,
			DishID:   int(item.dishID.Int64),
			Quantity: int(item.quantity.Int64),
			Price:    item.price.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
