package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pisarev203/tg-shop/internal/order"
)

func TestSummary(t *testing.T) {
	o := &order.Order{
		ID:           7,
		Customer:     "@someone",
		Metro:        "Arbatskaya",
		DeliveryTime: "19:00",
		Items: []order.LineItem{
			{Name: "A", Price: 100, Qty: 2},
			{Name: "B", Price: 50, Qty: 1},
		},
		Total: 250,
	}

	text := order.Summary(o)

	assert.Contains(t, text, "<b>Новый заказ</b> #7")
	assert.Contains(t, text, "<b>Клиент:</b> @someone")
	assert.Contains(t, text, "<b>Метро:</b> Arbatskaya")
	assert.Contains(t, text, "<b>Время:</b> 19:00")
	assert.Contains(t, text, "• A × 2 = 200 ₽")
	assert.Contains(t, text, "• B × 1 = 50 ₽")
	// The stored declared total is rendered as-is, not recomputed.
	assert.Contains(t, text, "<b>Итого:</b> 250 ₽")
}

func TestSummary_DeclaredTotalIsNotRecomputed(t *testing.T) {
	o := &order.Order{
		ID:    8,
		Items: []order.LineItem{{Name: "A", Price: 100, Qty: 1}},
		Total: 999,
	}

	text := order.Summary(o)

	assert.Contains(t, text, "• A × 1 = 100 ₽")
	assert.Contains(t, text, "<b>Итого:</b> 999 ₽")
}

func TestSummary_EmptyCart(t *testing.T) {
	o := &order.Order{ID: 9}

	text := order.Summary(o)

	assert.Contains(t, text, "• (пусто)")
	assert.Contains(t, text, "<b>Итого:</b> 0 ₽")
	assert.NotContains(t, text, "Клиент")
	assert.NotContains(t, text, "Метро")
}

func TestSummary_BlankItemNameFallsBack(t *testing.T) {
	o := &order.Order{
		ID:    10,
		Items: []order.LineItem{{Name: "  ", Price: 30, Qty: 2}},
		Total: 60,
	}

	assert.Contains(t, order.Summary(o), "• Товар × 2 = 60 ₽")
}
