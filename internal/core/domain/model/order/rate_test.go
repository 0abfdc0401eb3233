package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateFromSKU(t *testing.T) {
	t.Run("should split carrier id and service code on the delimiter", func(t *testing.T) {
		rate, err := order.NewRateFromSKU("ups--ups_ground")

		require.NoError(t, err)
		require.NoError(t, rate.Validate())
		assert.Equal(t, "ups", rate.CarrierID())
		assert.Equal(t, "ups_ground", rate.ServiceCode())
		assert.Equal(t, "ups--ups_ground", rate.SKU())
	})

	t.Run("should keep service codes containing underscores intact", func(t *testing.T) {
		rate, err := order.NewRateFromSKU("fedex--fedex_2_day")

		require.NoError(t, err)
		assert.Equal(t, "fedex", rate.CarrierID())
		assert.Equal(t, "fedex_2_day", rate.ServiceCode())
	})

	t.Run("should fail for empty sku", func(t *testing.T) {
		_, err := order.NewRateFromSKU("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail for sku without delimiter", func(t *testing.T) {
		_, err := order.NewRateFromSKU("ups_ground")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for sku with empty carrier id", func(t *testing.T) {
		_, err := order.NewRateFromSKU("--ups_ground")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for sku with empty service code", func(t *testing.T) {
		_, err := order.NewRateFromSKU("ups--")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRate_Validate(t *testing.T) {
	t.Run("should fail for zero-value rate", func(t *testing.T) {
		var rate order.Rate

		err := rate.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrRateIsNotConstructed, err)
	})
}
