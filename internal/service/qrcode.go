package service

import (
	"fmt"
	"net/url"
	"strconv"

	"food-order/internal/domain"

	"github.com/skip2/go-qrcode"
)

const defaultReceiptSize = 256

type QRGenerator interface {
	Generate(order *domain.Order) ([]byte, error)
}

// ReceiptQR renders a PNG linking to the order, with its total and payment
// method in the query.
type ReceiptQR struct {
	BaseURL string
	// Size in pixels; defaults to 256.
	Size  int
	Level qrcode.RecoveryLevel
}

func NewReceiptQR(baseURL string) *ReceiptQR {
	return &ReceiptQR{BaseURL: baseURL, Size: defaultReceiptSize, Level: qrcode.Medium}
}

func (g *ReceiptQR) Link(order *domain.Order) (string, error) {
	link, err := url.JoinPath(g.BaseURL, "api", "orders", strconv.Itoa(order.ID))
	if err != nil {
		return "", fmt.Errorf("receipt link for order %d: %w", order.ID, err)
	}
	query := url.Values{}
	query.Set("total", strconv.FormatFloat(order.TotalPrice, 'f', 2, 64))
	query.Set("payment", string(order.Payment))
	return link + "?" + query.Encode(), nil
}

func (g *ReceiptQR) Generate(order *domain.Order) ([]byte, error) {
	link, err := g.Link(order)
	if err != nil {
		return nil, err
	}
	code, err := qrcode.New(link, g.Level)
	if err != nil {
		return nil, fmt.Errorf("encode receipt of order %d: %w", order.ID, err)
	}
	size := g.Size
	if size <= 0 {
		size = defaultReceiptSize
	}
	return code.PNG(size)
}
