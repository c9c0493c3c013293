package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"
)

var (
	ErrAnalyzeOrderProfitQueryIsNotConstructed = errors.New(
		"AnalyzeOrderProfitQuery must be created via NewAnalyzeOrderProfitQuery constructor",
	)
	ErrAnalysisItemsAreRequired = errors.New("analysis requires at least one item")
)

// AnalysisItemInput is one prospective order line to analyze.
type AnalysisItemInput struct {
	ProductID string
	Name      string
	Quantity  float64
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
}

// AnalyzeOrderProfitQuery runs the profitability analysis over a prospective
// order without persisting anything. Used for what-if quoting before intake.
type AnalyzeOrderProfitQuery struct {
	items []AnalysisItemInput

	guard guard.ConstructorGuard
}

// NewAnalyzeOrderProfitQuery creates a what-if analysis query.
func NewAnalyzeOrderProfitQuery(items []AnalysisItemInput) (AnalyzeOrderProfitQuery, error) {
	if len(items) == 0 {
		return AnalyzeOrderProfitQuery{}, ErrAnalysisItemsAreRequired
	}
	for _, item := range items {
		if item.ProductID == "" {
			return AnalyzeOrderProfitQuery{}, errs.NewValueIsRequiredError("product id")
		}
	}

	return AnalyzeOrderProfitQuery{
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AnalyzeOrderProfitQuery) Validate() error {
	return q.guard.Validate(ErrAnalyzeOrderProfitQueryIsNotConstructed)
}

// Items returns the prospective order lines.
func (q AnalyzeOrderProfitQuery) Items() []AnalysisItemInput {
	return q.items
}

// AnalyzeOrderProfitQueryResponse is the analysis snapshot for a prospective
// order.
type AnalyzeOrderProfitQueryResponse struct {
	TotalValue           decimal.Decimal
	PredictedProfit      decimal.Decimal
	ProfitMargin         float64
	RiskScore            float64
	Confidence           float64
	OptimalShipping      string
	RecommendedInsurance decimal.Decimal
}
