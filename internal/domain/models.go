package domain

import (
	"math"
	"time"
)

type OrderStatus string

// OrderStatusNew is assigned to every order at creation. No transitions exist.
const OrderStatusNew OrderStatus = "new"

type PaymentMethod string

const (
	PaymentOnline   PaymentMethod = "Онлайн"
	PaymentERIP     PaymentMethod = "ЕРИП"
	PaymentTerminal PaymentMethod = "Терминал"
	PaymentCash     PaymentMethod = "Наличные"
)

var PaymentMethods = []PaymentMethod{PaymentOnline, PaymentERIP, PaymentTerminal, PaymentCash}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

const earthRadiusMeters = 6371000

// DistanceTo is the great-circle distance in meters.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (other.Longitude - c.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

type Restaurant struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
	Coordinates
}

type Dish struct {
	ID           int     `json:"dish_id" db:"id"`
	RestaurantID int     `json:"restaurant_id" db:"restaurant_id"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	Price        float64 `json:"price" db:"price"`
}

type Order struct {
	ID           int           `json:"id" db:"id"`
	UserID       int           `json:"user_id" db:"user_id"`
	RestaurantID int           `json:"restaurant_id" db:"restaurant_id"`
	Address      string        `json:"address" db:"address"`
	Comment      string        `json:"comment" db:"comment"`
	Payment      PaymentMethod `json:"payment" db:"payment"`
	Status       OrderStatus   `json:"status" db:"status"`
	TotalPrice   float64       `json:"total_price" db:"total_price"`
	Items        []OrderItem   `json:"items"`
}

// OrderItem.Price is the dish price at the moment the order was placed.
type OrderItem struct {
	ID       int     `json:"id" db:"id"`
	OrderID  int     `json:"order_id" db:"order_id"`
	DishID   int     `json:"dish_id" db:"dish_id"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}

// Subtotal returns the sum of price*quantity over the items.
func Subtotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	UserID       int         `json:"user_id"`
	RestaurantID int         `json:"restaurant_id"`
	TotalPrice   float64     `json:"total_price"`
	Items        []OrderItem `json:"items"`
	Timestamp    time.Time   `json:"timestamp"`
}

const EventOrderPlaced = "order_placed"

type DishPopularity struct {
	DishID       int     `json:"dish_id" db:"dish_id"`
	DishName     string  `json:"dish_name" db:"dish_name"`
	RestaurantID int     `json:"restaurant_id" db:"restaurant_id"`
	Score        float64 `json:"score" db:"score"`
}
