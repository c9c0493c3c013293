package product_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/product"
)

func Test_NewProduct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("creates a catalog entry", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Cardamom 8mm", "spices",
			decimal.NewFromInt(1200), decimal.NewFromInt(800), 500, now)
		require.NoError(t, err)

		assert.Equal(t, "Cardamom 8mm", p.Name())
		assert.Equal(t, "spices", p.Category())
		assert.True(t, p.IsAvailable())
	})

	t.Run("rejects negative pricing", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Cardamom 8mm", "spices",
			decimal.NewFromInt(-1), decimal.NewFromInt(800), 500, now)
		assert.Error(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), "Cardamom 8mm", "spices",
			decimal.NewFromInt(1200), decimal.NewFromInt(-1), 500, now)
		assert.Error(t, err)
	})

	t.Run("rejects missing name or category", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "spices",
			decimal.NewFromInt(1200), decimal.NewFromInt(800), 500, now)
		assert.Error(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), "Cardamom 8mm", "",
			decimal.NewFromInt(1200), decimal.NewFromInt(800), 500, now)
		assert.Error(t, err)
	})
}

func Test_Product_Reserve(t *testing.T) {
	now := time.Now().UTC()
	p, err := product.NewProduct(kernel.NewUUID(), "Cardamom 8mm", "spices",
		decimal.NewFromInt(1200), decimal.NewFromInt(800), 100, now)
	require.NoError(t, err)

	t.Run("withdraws inventory", func(t *testing.T) {
		require.NoError(t, p.Reserve(40))
		assert.InDelta(t, 60, p.Inventory(), 0.0001)
	})

	t.Run("rejects overdraw", func(t *testing.T) {
		err := p.Reserve(1000)
		assert.Error(t, err)
		assert.InDelta(t, 60, p.Inventory(), 0.0001)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		assert.Error(t, p.Reserve(0))
		assert.Error(t, p.Reserve(-5))
	})

	t.Run("draining inventory makes the product unavailable", func(t *testing.T) {
		require.NoError(t, p.Reserve(60))
		assert.False(t, p.IsAvailable())
	})
}
