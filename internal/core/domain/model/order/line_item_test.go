package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItem_IsShipping(t *testing.T) {
	t.Run("should match exact shipping prefix", func(t *testing.T) {
		item := order.LineItem{Name: "shipping", SKU: "ups--ups_ground"}

		assert.True(t, item.IsShipping())
	})

	t.Run("should match shipping prefix case-insensitively", func(t *testing.T) {
		item := order.LineItem{Name: "SHIPPING (FedEx 2 Day)", SKU: "fedex--fedex_2_day"}

		assert.True(t, item.IsShipping())
	})

	t.Run("should not match shipping appearing mid-name", func(t *testing.T) {
		item := order.LineItem{Name: "Free Shipping Mug", SKU: "mug-001"}

		assert.False(t, item.IsShipping())
	})

	t.Run("should not match product items", func(t *testing.T) {
		item := order.LineItem{Name: "Blue T-Shirt", SKU: "shirt-blue-m"}

		assert.False(t, item.IsShipping())
	})
}

func TestFindShippingItem(t *testing.T) {
	t.Run("should find the first shipping line item", func(t *testing.T) {
		items := []order.LineItem{
			{Name: "Blue T-Shirt", SKU: "shirt-blue-m", Quantity: 2},
			{Name: "Shipping (UPS Ground)", SKU: "ups--ups_ground", Quantity: 1},
			{Name: "Shipping Insurance", SKU: "ins-standard", Quantity: 1},
		}

		item, found := order.FindShippingItem(items)

		require.True(t, found)
		assert.Equal(t, "ups--ups_ground", item.SKU)
	})

	t.Run("should report absence without error", func(t *testing.T) {
		items := []order.LineItem{
			{Name: "Blue T-Shirt", SKU: "shirt-blue-m"},
		}

		_, found := order.FindShippingItem(items)

		assert.False(t, found)
	})

	t.Run("should handle empty item list", func(t *testing.T) {
		_, found := order.FindShippingItem(nil)

		assert.False(t, found)
	})
}
