// Package intel provides the read-only market-intelligence model consumed
// by the profit/risk analyzer. Records originate in an external prediction
// engine; this core never writes them.
package intel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Freshness windows. Records older than the window are treated as absent,
// not as zero-value signals.
const (
	// PredictionWindow bounds the age of price predictions eligible for
	// profit analysis.
	PredictionWindow = 24 * time.Hour

	// IntelligenceWindow bounds the age of general market intelligence.
	IntelligenceWindow = 7 * 24 * time.Hour

	// ArbitrageWindow bounds the age of arbitrage opportunity records.
	ArbitrageWindow = 24 * time.Hour
)

// PricePrediction is a forecast price for a product with the engine's
// confidence in it.
type PricePrediction struct {
	Value      decimal.Decimal
	Confidence float64
}

// MarketTrends carries the risk signals attached to a record. RiskFactors
// is the raw list as produced by the engine; the analyzer only cares that
// it is non-empty.
type MarketTrends struct {
	RiskFactors     []string
	PriceVolatility float64
}

// Record is one market-intelligence observation for a product. Prediction
// and Trends are optional; either may be nil when the engine produced no
// such signal.
type Record struct {
	ProductID  string
	Timestamp  time.Time
	Prediction *PricePrediction
	Trends     *MarketTrends

	// Arbitrage holds the serialized arbitrage-opportunity payload, empty
	// when the record carries none.
	Arbitrage string
}

// IsFresh reports whether the record falls within the given window relative
// to now.
func (r Record) IsFresh(now time.Time, window time.Duration) bool {
	return !r.Timestamp.Before(now.Add(-window))
}

// HasPrediction reports whether the record carries a usable price prediction.
func (r Record) HasPrediction() bool {
	return r.Prediction != nil
}

// HasRiskSignals reports whether the record carries market-trend risk
// factors. Volatility alone without risk factors is not a risk signal,
// matching the analyzer's scoring rule.
func (r Record) HasRiskSignals() bool {
	return r.Trends != nil && len(r.Trends.RiskFactors) > 0
}
