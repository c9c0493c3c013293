package order_test

import (
	"testing"
	"time"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClient(t *testing.T) order.Client {
	t.Helper()
	c, err := order.NewClient("Spice Route Exports", "A. Nair", "ops@spiceroute.example")
	require.NoError(t, err)
	return c
}

func mustItem(t *testing.T, productID string, qty float64, price, cost string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, productID, qty,
		decimal.RequireFromString(price), decimal.RequireFromString(cost))
	require.NoError(t, err)
	return item
}

func mustNumber(t *testing.T) order.Number {
	t.Helper()
	n, err := order.NewNumber(2026, 1)
	require.NoError(t, err)
	return n
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("derives line totals and total value", func(t *testing.T) {
		items := []order.LineItem{
			mustItem(t, "saffron", 10, "100", "60"),
			mustItem(t, "cardamom", 5, "50", "30"),
		}

		o, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), mustClient(t), items,
			"LC_at_sight", "FOB_Mumbai", now)
		require.NoError(t, err)

		assert.True(t, o.Details().TotalValue().Equal(decimal.RequireFromString("1250")))
		assert.Equal(t, "INR", o.Details().Currency())
		assert.Equal(t, "LC_at_sight", o.Details().PaymentTerms())
		assert.True(t, o.Items()[0].Total().Equal(decimal.RequireFromString("1000")))
		assert.True(t, o.TotalCost().Equal(decimal.RequireFromString("750")))
	})

	t.Run("starts in created status with one history entry", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), mustClient(t),
			[]order.LineItem{mustItem(t, "saffron", 1, "100", "0")}, "", "", now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCreated, o.Status())
		require.Len(t, o.History(), 1)
		assert.Equal(t, order.StatusCreated, o.History()[0].Status())
		assert.Equal(t, "Order created", o.History()[0].Note())
	})

	t.Run("rejects empty product list", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), mustClient(t), nil, "", "", now)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed client", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), order.Client{},
			[]order.LineItem{mustItem(t, "saffron", 1, "100", "0")}, "", "", now)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed line item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), mustClient(t),
			[]order.LineItem{{}}, "", "", now)
		require.Error(t, err)
	})
}

func TestLineItemValidation(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewLineItem("saffron", "Saffron", 0,
			decimal.RequireFromString("100"), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem("saffron", "Saffron", 1,
			decimal.RequireFromString("-1"), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("overwrites the derived total", func(t *testing.T) {
		item, err := order.NewLineItem("saffron", "Saffron", 2.5,
			decimal.RequireFromString("4"), decimal.Zero)
		require.NoError(t, err)
		assert.True(t, item.Total().Equal(decimal.RequireFromString("10")))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), mustClient(t),
			[]order.LineItem{mustItem(t, "saffron", 1, "100", "0")}, "", "", now)
		require.NoError(t, err)
		return o
	}

	t.Run("appends history and moves current status", func(t *testing.T) {
		o := newOrder(t)
		later := now.Add(time.Hour)

		require.NoError(t, o.ChangeStatus(order.StatusDocumentation, "", later))

		assert.Equal(t, order.StatusDocumentation, o.Status())
		require.Len(t, o.History(), 2)
		assert.Equal(t, "Status updated to documentation", o.History()[1].Note())
		assert.Equal(t, later, o.History()[1].Timestamp())
	})

	t.Run("accepts caller-supplied statuses outside the known set", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Status("quality_check"), "QC started", now.Add(time.Hour)))
		assert.Equal(t, order.Status("quality_check"), o.Status())
	})

	t.Run("rejects the empty status", func(t *testing.T) {
		o := newOrder(t)
		require.Error(t, o.ChangeStatus("", "", now))
		assert.Len(t, o.History(), 1)
	})

	t.Run("history copies do not leak the internal slice", func(t *testing.T) {
		o := newOrder(t)
		h := o.History()
		h[0] = order.StatusChange{}
		assert.Equal(t, order.StatusCreated, o.History()[0].Status())
	})
}

func TestOrder_AttachAnalysis(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), mustNumber(t), mustClient(t),
		[]order.LineItem{mustItem(t, "saffron", 1, "100", "0")}, "", "", now)
	require.NoError(t, err)

	_, ok := o.Analysis()
	assert.False(t, ok)

	a, err := order.NewAnalysis(decimal.RequireFromString("50"), 0.4, 0.2, 0.8,
		order.SeaFreight, decimal.RequireFromString("110"))
	require.NoError(t, err)
	require.NoError(t, o.AttachAnalysis(a))

	got, ok := o.Analysis()
	require.True(t, ok)
	assert.Equal(t, order.SeaFreight, got.OptimalShipping())

	t.Run("overwrites a stale snapshot", func(t *testing.T) {
		replacement, err := order.NewAnalysis(decimal.Zero, 0, 0.9, 0.1,
			order.AirFreight, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, o.AttachAnalysis(replacement))

		got, ok := o.Analysis()
		require.True(t, ok)
		assert.Equal(t, order.AirFreight, got.OptimalShipping())
		assert.InDelta(t, 0.9, got.RiskScore(), 1e-9)
	})

	t.Run("rejects an unconstructed snapshot", func(t *testing.T) {
		require.Error(t, o.AttachAnalysis(order.Analysis{}))
	})
}

func TestNewAnalysis_Ranges(t *testing.T) {
	t.Run("rejects risk score above 1", func(t *testing.T) {
		_, err := order.NewAnalysis(decimal.Zero, 0, 1.1, 0.5, order.SeaFreight, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects negative confidence", func(t *testing.T) {
		_, err := order.NewAnalysis(decimal.Zero, 0, 0.5, -0.1, order.SeaFreight, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects unknown shipping method", func(t *testing.T) {
		_, err := order.NewAnalysis(decimal.Zero, 0, 0.5, 0.5, order.ShippingMethod("drone"), decimal.Zero)
		require.Error(t, err)
	})
}
