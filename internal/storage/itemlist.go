package storage

import (
	"strconv"
	"strings"

	"food-order/internal/domain"
)

// The packed item list is the flat text form produced by
// GROUP_CONCAT(dish_id || ',' || quantity || ',' || price): every item is
// three comma separated fields and items follow each other with the same
// comma. A semicolon is also accepted between items.
const (
	itemFieldSeparator = ","
	itemSeparator      = ";"
	fieldsPerItem      = 3
)

// ParseItemList decodes a packed item list. Empty input yields an empty list
// and an incomplete trailing group is dropped. A fragment that is not a
// number fails the whole decode with a *DecodeError.
func ParseItemList(packed string) ([]domain.OrderItem, error) {
	items := []domain.OrderItem{}
	packed = strings.TrimSpace(packed)
	if packed == "" {
		return items, nil
	}

	fields := strings.Split(strings.ReplaceAll(packed, itemSeparator, itemFieldSeparator), itemFieldSeparator)
	for i := 0; i+fieldsPerItem <= len(fields); i += fieldsPerItem {
		dishID, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, &DecodeError{Field: "dish_id", Fragment: fields[i], Err: err}
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return nil, &DecodeError{Field: "quantity", Fragment: fields[i+1], Err: err}
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(fields[i+2]), 64)
		if err != nil {
			return nil, &DecodeError{Field: "price", Fragment: fields[i+2], Err: err}
		}
		items = append(items, domain.OrderItem{DishID: dishID, Quantity: quantity, Price: price})
	}
	return items, nil
}

// FormatItemList is the inverse of ParseItemList.
func FormatItemList(items []domain.OrderItem) string {
	parts := make([]string, 0, len(items)*fieldsPerItem)
	for _, item := range items {
		parts = append(parts,
			strconv.Itoa(item.DishID),
			strconv.Itoa(item.Quantity),
			strconv.FormatFloat(item.Price, 'f', -1, 64),
		)
	}
	return strings.Join(parts, itemFieldSeparator)
}
