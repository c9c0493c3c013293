package order

import (
	"errors"
	"fmt"

	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAnalysisIsNotConstructed = errors.New("Analysis must be created via NewAnalysis constructor")

// ShippingMethod is the recommended transport mode for an order.
type ShippingMethod string

const (
	SeaFreight     ShippingMethod = "sea_freight"
	ExpressCourier ShippingMethod = "express_courier"
	AirFreight     ShippingMethod = "air_freight"
)

// Validate checks that the shipping method is one of the enumerated modes.
func (m ShippingMethod) Validate() error {
	switch m {
	case SeaFreight, ExpressCourier, AirFreight:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("shipping method",
			fmt.Errorf("%q is not a known shipping method", string(m)))
	}
}

// Analysis is the profit/risk snapshot derived for an order. It is scoped
// to its order, recomputed whenever totals change, and overwritten whole —
// never merged with a previous snapshot.
type Analysis struct {
	predictedProfit      decimal.Decimal
	profitMargin         float64
	riskScore            float64
	confidence           float64
	optimalShipping      ShippingMethod
	recommendedInsurance decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAnalysis creates an analysis snapshot. Risk score and confidence must
// already be within [0, 1]; clamping is the analyzer's responsibility.
func NewAnalysis(
	predictedProfit decimal.Decimal,
	profitMargin float64,
	riskScore float64,
	confidence float64,
	optimalShipping ShippingMethod,
	recommendedInsurance decimal.Decimal,
) (Analysis, error) {
	if riskScore < 0 || riskScore > 1 {
		return Analysis{}, errs.NewValueIsOutOfRangeError("risk score", riskScore, 0, 1)
	}
	if confidence < 0 || confidence > 1 {
		return Analysis{}, errs.NewValueIsOutOfRangeError("confidence", confidence, 0, 1)
	}
	if err := optimalShipping.Validate(); err != nil {
		return Analysis{}, err
	}

	return Analysis{
		predictedProfit:      predictedProfit,
		profitMargin:         profitMargin,
		riskScore:            riskScore,
		confidence:           confidence,
		optimalShipping:      optimalShipping,
		recommendedInsurance: recommendedInsurance,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the analysis was created through the constructor.
func (a Analysis) Validate() error {
	return a.guard.Validate(ErrAnalysisIsNotConstructed)
}

// PredictedProfit returns the predicted total profit across line items.
func (a Analysis) PredictedProfit() decimal.Decimal {
	return a.predictedProfit
}

// ProfitMargin returns gross profit over total value; 0 for zero-value orders.
func (a Analysis) ProfitMargin() float64 {
	return a.profitMargin
}

// RiskScore returns the market risk score in [0, 1].
func (a Analysis) RiskScore() float64 {
	return a.riskScore
}

// Confidence returns the prediction confidence in [0, 1].
func (a Analysis) Confidence() float64 {
	return a.confidence
}

// OptimalShipping returns the recommended shipping method.
func (a Analysis) OptimalShipping() ShippingMethod {
	return a.optimalShipping
}

// RecommendedInsurance returns the suggested insured value.
func (a Analysis) RecommendedInsurance() decimal.Decimal {
	return a.recommendedInsurance
}
