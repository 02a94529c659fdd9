package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docebom/pdv-local/internal/domain/product"
)

func item(price, costPrice float64, quantity int) CartItem {
	return CartItem{
		Product:  product.Product{ID: "P", Price: price, CostPrice: costPrice},
		Quantity: quantity,
	}
}

func TestTotals(t *testing.T) {
	total, cost := Totals([]CartItem{
		item(10, 4, 3),
		item(5, 2, 2),
	})

	assert.Equal(t, 40.0, total)
	assert.Equal(t, 16.0, cost)
}

func TestNewSale(t *testing.T) {
	now := time.Date(2024, 12, 20, 9, 5, 0, 0, time.Local)
	s, err := NewSale("C-1", "Dona Maria", []CartItem{item(10, 4, 2)}, "Pix", "30 dias", now)
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 20.0, s.Total)
	assert.Equal(t, 12.0, s.Profit)
	assert.Equal(t, "20/12/2024", s.Date)
	assert.Equal(t, "09:05", s.Time)
	assert.Equal(t, "Dona Maria", s.ClientName)
}

func TestNewSaleWalkInFallback(t *testing.T) {
	s, err := NewSale("", "", []CartItem{item(1, 1, 1)}, "", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, WalkInClientName, s.ClientName)
}

func TestNewSaleEmptyCart(t *testing.T) {
	_, err := NewSale("", "", nil, "", "", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewSaleInvalidQuantity(t *testing.T) {
	_, err := NewSale("", "", []CartItem{item(1, 1, 0)}, "", "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewSaleIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := NewSale("", "", []CartItem{item(1, 1, 1)}, "", "", time.Now())
		require.NoError(t, err)
		require.False(t, seen[s.ID], "id repetido: %s", s.ID)
		seen[s.ID] = true
	}
}

func TestCartItemSubtotal(t *testing.T) {
	assert.Equal(t, 30.0, item(10, 4, 3).Subtotal())
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	p := product.Product{Stock: 3}
	p.DecrementStock(5)
	assert.Equal(t, 0, p.Stock)

	p = product.Product{Stock: 10}
	p.DecrementStock(4)
	assert.Equal(t, 6, p.Stock)
}
