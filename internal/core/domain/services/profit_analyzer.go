package services

import (
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/intel"
	"exportpro/internal/core/domain/model/order"
)

// Shipping tier thresholds in order value.
var (
	airFreightThreshold     = decimal.NewFromInt(100000)
	expressCourierThreshold = decimal.NewFromInt(50000)
)

// insuranceRate is applied to the order value to recommend coverage.
var insuranceRate = decimal.NewFromFloat(1.1)

const (
	riskBasePerSignal  = 0.1
	riskVolatilityGain = 0.5
)

// ProfitAnalyzer is a domain service that scores an order's expected
// profitability from its line items and the freshest available market data.
//
// The analysis degrades gracefully: items without fresh predictions simply do
// not contribute to the predicted-profit and confidence figures, and items
// without fresh risk signals do not raise the risk score.
type ProfitAnalyzer struct{}

// Analyze computes the profitability analysis for the given items and total
// order value. market maps product IDs to their latest intelligence record;
// entries may be nil or stale and are then ignored.
func (ProfitAnalyzer) Analyze(
	items []order.LineItem,
	totalValue decimal.Decimal,
	market map[string]*intel.Record,
	now time.Time,
) (order.Analysis, error) {
	totalCost := decimal.Zero
	for _, item := range items {
		totalCost = totalCost.Add(item.CostTotal())
	}
	grossProfit := totalValue.Sub(totalCost)

	profitMargin := 0.0
	if !totalValue.IsZero() {
		profitMargin, _ = grossProfit.Div(totalValue).Float64()
	}

	predictedProfit := decimal.Zero
	confidenceSum := 0.0
	predicted := 0
	riskScore := 0.0

	for _, item := range items {
		record := market[item.ProductID()]
		if record == nil {
			continue
		}

		if record.HasPrediction() && record.IsFresh(now, intel.PredictionWindow) {
			delta := record.Prediction.Value.Sub(item.UnitPrice())
			predictedProfit = predictedProfit.Add(delta.Mul(decimal.NewFromFloat(item.Quantity())))
			confidenceSum += record.Prediction.Confidence
			predicted++
		}

		if record.HasRiskSignals() && record.IsFresh(now, intel.IntelligenceWindow) {
			riskScore += riskBasePerSignal + record.Trends.PriceVolatility*riskVolatilityGain
		}
	}

	confidence := 0.0
	if predicted > 0 {
		confidence = confidenceSum / float64(predicted)
	}
	// clamp to [0,1]; the engine's volatility figures are unvalidated
	if riskScore > 1 {
		riskScore = 1
	}
	if riskScore < 0 {
		riskScore = 0
	}

	return order.NewAnalysis(
		predictedProfit,
		profitMargin,
		riskScore,
		confidence,
		recommendShipping(totalValue),
		totalValue.Mul(insuranceRate),
	)
}

func recommendShipping(totalValue decimal.Decimal) order.ShippingMethod {
	switch {
	case totalValue.GreaterThan(airFreightThreshold):
		return order.AirFreight
	case totalValue.GreaterThan(expressCourierThreshold):
		return order.ExpressCourier
	default:
		return order.SeaFreight
	}
}
