package storage

import (
	"errors"
	"testing"

	"food-order/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemList(t *testing.T) {
	tests := []struct {
		name   string
		packed string
		want   []domain.OrderItem
	}{
		{
			name:   "empty",
			packed: "",
			want:   []domain.OrderItem{},
		},
		{
			name:   "blank",
			packed: "   ",
			want:   []domain.OrderItem{},
		},
		{
			name:   "two items",
			packed: "1,2,12.5,2,1,11.0",
			want: []domain.OrderItem{
				{DishID: 1, Quantity: 2, Price: 12.5},
				{DishID: 2, Quantity: 1, Price: 11},
			},
		},
		{
			name:   "semicolon between items",
			packed: "1,2,12.5;2,1,11",
			want: []domain.OrderItem{
				{DishID: 1, Quantity: 2, Price: 12.5},
				{DishID: 2, Quantity: 1, Price: 11},
			},
		},
		{
			name:   "incomplete trailing group dropped",
			packed: "3,1,4.25,7,2",
			want:   []domain.OrderItem{{DishID: 3, Quantity: 1, Price: 4.25}},
		},
		{
			name:   "spaces around fields",
			packed: " 5 , 3 , 2.5 ",
			want:   []domain.OrderItem{{DishID: 5, Quantity: 3, Price: 2.5}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParseItemList(testCase.packed)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParseItemList_MalformedFragment(t *testing.T) {
	tests := []struct {
		name     string
		packed   string
		field    string
		fragment string
	}{
		{name: "dish id", packed: "x,1,2.5", field: "dish_id", fragment: "x"},
		{name: "quantity", packed: "1,two,2.5", field: "quantity", fragment: "two"},
		{name: "price", packed: "1,2,12.5,2,1,abc", field: "price", fragment: "abc"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParseItemList(testCase.packed)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode))

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, testCase.field, decodeErr.Field)
			assert.Equal(t, testCase.fragment, decodeErr.Fragment)
		})
	}
}

func TestFormatItemList(t *testing.T) {
	items := []domain.OrderItem{
		{DishID: 1, Quantity: 2, Price: 12.5},
		{DishID: 2, Quantity: 1, Price: 11},
	}
	packed := FormatItemList(items)
	assert.Equal(t, "1,2,12.5,2,1,11", packed)

	parsed, err := ParseItemList(packed)
	require.NoError(t, err)
	assert.Equal(t, items, parsed)

	assert.Equal(t, "", FormatItemList(nil))
}
