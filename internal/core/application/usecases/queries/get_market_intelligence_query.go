package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"
)

var (
	ErrGetMarketIntelligenceQueryIsNotConstructed = errors.New(
		"GetMarketIntelligenceQuery must be created via NewGetMarketIntelligenceQuery constructor",
	)
	ErrGetPricePredictionQueryIsNotConstructed = errors.New(
		"GetPricePredictionQuery must be created via NewGetPricePredictionQuery constructor",
	)
	ErrGetArbitrageQueryIsNotConstructed = errors.New(
		"GetArbitrageQuery must be created via NewGetArbitrageQuery constructor",
	)
)

// GetMarketIntelligenceQuery retrieves the freshest market trends for a
// product, honoring the intelligence staleness window.
type GetMarketIntelligenceQuery struct {
	productID string

	guard guard.ConstructorGuard
}

// NewGetMarketIntelligenceQuery creates a market intelligence lookup.
func NewGetMarketIntelligenceQuery(productID string) (GetMarketIntelligenceQuery, error) {
	if productID == "" {
		return GetMarketIntelligenceQuery{}, errs.NewValueIsRequiredError("product id")
	}

	return GetMarketIntelligenceQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMarketIntelligenceQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketIntelligenceQueryIsNotConstructed)
}

// ProductID returns the queried product.
func (q GetMarketIntelligenceQuery) ProductID() string {
	return q.productID
}

// GetMarketIntelligenceQueryResponse carries the fresh trend snapshot.
// Fresh is false when no record exists or the latest one is stale.
type GetMarketIntelligenceQueryResponse struct {
	ProductID       string
	Fresh           bool
	ObservedAt      time.Time
	RiskFactors     []string
	PriceVolatility float64
	Arbitrage       string
}

// GetPricePredictionQuery retrieves the freshest price prediction for a
// product, honoring the prediction staleness window.
type GetPricePredictionQuery struct {
	productID string

	guard guard.ConstructorGuard
}

// NewGetPricePredictionQuery creates a price prediction lookup.
func NewGetPricePredictionQuery(productID string) (GetPricePredictionQuery, error) {
	if productID == "" {
		return GetPricePredictionQuery{}, errs.NewValueIsRequiredError("product id")
	}

	return GetPricePredictionQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPricePredictionQuery) Validate() error {
	return q.guard.Validate(ErrGetPricePredictionQueryIsNotConstructed)
}

// ProductID returns the queried product.
func (q GetPricePredictionQuery) ProductID() string {
	return q.productID
}

// GetPricePredictionQueryResponse carries the fresh prediction, if any.
type GetPricePredictionQueryResponse struct {
	ProductID      string
	Fresh          bool
	ObservedAt     time.Time
	PredictedPrice decimal.Decimal
	Confidence     float64
}

// GetArbitrageQuery retrieves arbitrage opportunities observed within the
// arbitrage staleness window.
type GetArbitrageQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArbitrageQuery creates an arbitrage listing query.
func NewGetArbitrageQuery() GetArbitrageQuery {
	return GetArbitrageQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetArbitrageQuery) Validate() error {
	return q.guard.Validate(ErrGetArbitrageQueryIsNotConstructed)
}

// GetArbitrageQueryResponse is one arbitrage opportunity.
type GetArbitrageQueryResponse struct {
	ProductID   string
	ObservedAt  time.Time
	Opportunity string
}
