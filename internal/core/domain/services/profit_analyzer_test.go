package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportpro/internal/core/domain/model/intel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
)

func item(t *testing.T, productID string, quantity float64, unitPrice, unitCost int64) order.LineItem {
	t.Helper()
	i, err := order.NewLineItem(productID, productID, quantity, decimal.NewFromInt(unitPrice), decimal.NewFromInt(unitCost))
	require.NoError(t, err)
	return i
}

func Test_ProfitAnalyzer_Analyze(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	var analyzer services.ProfitAnalyzer

	t.Run("margin from costs without market data", func(t *testing.T) {
		items := []order.LineItem{
			item(t, "prod-1", 10, 100, 60),
			item(t, "prod-2", 5, 50, 30),
		}
		total := decimal.NewFromInt(1250)

		analysis, err := analyzer.Analyze(items, total, nil, now)
		require.NoError(t, err)

		// cost 750, gross 500, margin 0.4
		assert.InDelta(t, 0.4, analysis.ProfitMargin(), 0.0001)
		assert.True(t, analysis.PredictedProfit().IsZero())
		assert.Zero(t, analysis.Confidence())
		assert.Zero(t, analysis.RiskScore())
		assert.Equal(t, order.SeaFreight, analysis.OptimalShipping())
		assert.True(t, decimal.NewFromInt(1375).Equal(analysis.RecommendedInsurance()))
	})

	t.Run("zero total yields zero margin", func(t *testing.T) {
		analysis, err := analyzer.Analyze(nil, decimal.Zero, nil, now)
		require.NoError(t, err)
		assert.Zero(t, analysis.ProfitMargin())
	})

	t.Run("fresh predictions drive profit and confidence", func(t *testing.T) {
		items := []order.LineItem{
			item(t, "prod-1", 10, 100, 60),
			item(t, "prod-2", 5, 50, 30),
		}
		market := map[string]*intel.Record{
			"prod-1": {
				ProductID: "prod-1",
				Timestamp: now.Add(-time.Hour),
				Prediction: &intel.PricePrediction{
					Value:      decimal.NewFromInt(120),
					Confidence: 0.8,
				},
			},
		}

		analysis, err := analyzer.Analyze(items, decimal.NewFromInt(1250), market, now)
		require.NoError(t, err)

		// (120 - 100) * 10
		assert.True(t, decimal.NewFromInt(200).Equal(analysis.PredictedProfit()))
		// averaged only over items with a prediction
		assert.InDelta(t, 0.8, analysis.Confidence(), 0.0001)
	})

	t.Run("stale predictions are ignored", func(t *testing.T) {
		items := []order.LineItem{item(t, "prod-1", 10, 100, 60)}
		market := map[string]*intel.Record{
			"prod-1": {
				ProductID: "prod-1",
				Timestamp: now.Add(-25 * time.Hour),
				Prediction: &intel.PricePrediction{
					Value:      decimal.NewFromInt(120),
					Confidence: 0.8,
				},
			},
		}

		analysis, err := analyzer.Analyze(items, decimal.NewFromInt(1000), market, now)
		require.NoError(t, err)
		assert.True(t, analysis.PredictedProfit().IsZero())
		assert.Zero(t, analysis.Confidence())
	})

	t.Run("risk accumulates per item and clamps at one", func(t *testing.T) {
		items := []order.LineItem{
			item(t, "prod-1", 1, 100, 60),
			item(t, "prod-2", 1, 100, 60),
			item(t, "prod-3", 1, 100, 60),
		}
		market := map[string]*intel.Record{}
		for _, id := range []string{"prod-1", "prod-2", "prod-3"} {
			market[id] = &intel.Record{
				ProductID: id,
				Timestamp: now.Add(-time.Hour),
				Trends: &intel.MarketTrends{
					RiskFactors:     []string{"monsoon delays"},
					PriceVolatility: 0.9,
				},
			}
		}

		analysis, err := analyzer.Analyze(items, decimal.NewFromInt(300), market, now)
		require.NoError(t, err)

		// 3 * (0.1 + 0.9*0.5) = 1.65, clamped
		assert.InDelta(t, 1.0, analysis.RiskScore(), 0.0001)
	})

	t.Run("negative volatility clamps at zero", func(t *testing.T) {
		items := []order.LineItem{item(t, "prod-1", 1, 100, 60)}
		market := map[string]*intel.Record{
			"prod-1": {
				ProductID: "prod-1",
				Timestamp: now.Add(-time.Hour),
				Trends: &intel.MarketTrends{
					RiskFactors:     []string{"price correction"},
					PriceVolatility: -0.8,
				},
			},
		}

		// 0.1 + (-0.8)*0.5 = -0.3, clamped
		analysis, err := analyzer.Analyze(items, decimal.NewFromInt(100), market, now)
		require.NoError(t, err)
		assert.Zero(t, analysis.RiskScore())
	})

	t.Run("empty risk factors contribute nothing", func(t *testing.T) {
		items := []order.LineItem{item(t, "prod-1", 1, 100, 60)}
		market := map[string]*intel.Record{
			"prod-1": {
				ProductID: "prod-1",
				Timestamp: now.Add(-time.Hour),
				Trends:    &intel.MarketTrends{PriceVolatility: 0.9},
			},
		}

		analysis, err := analyzer.Analyze(items, decimal.NewFromInt(100), market, now)
		require.NoError(t, err)
		assert.Zero(t, analysis.RiskScore())
	})
}

func Test_ProfitAnalyzer_ShippingTiers(t *testing.T) {
	now := time.Now().UTC()
	var analyzer services.ProfitAnalyzer

	tests := []struct {
		name     string
		total    int64
		expected order.ShippingMethod
	}{
		{"low value goes by sea", 1250, order.SeaFreight},
		{"boundary stays by sea", 50000, order.SeaFreight},
		{"mid value goes express", 50001, order.ExpressCourier},
		{"boundary stays express", 100000, order.ExpressCourier},
		{"high value flies", 120000, order.AirFreight},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(nil, decimal.NewFromInt(test.total), nil, now)
			require.NoError(t, err)
			assert.Equal(t, test.expected, analysis.OptimalShipping())
		})
	}
}
