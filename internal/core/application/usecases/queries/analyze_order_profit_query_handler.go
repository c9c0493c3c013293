package queries

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
	"exportpro/internal/pkg/errs"
)

// AnalyzeOrderProfitQueryHandler runs the profitability analysis for a
// prospective order against the freshest market data, without creating the
// order.
type AnalyzeOrderProfitQueryHandler struct {
	intelRepo ports.IntelRepository
	analyzer  services.ProfitAnalyzer
	now       func() time.Time
}

// NewAnalyzeOrderProfitQueryHandler creates a handler for what-if analyses.
func NewAnalyzeOrderProfitQueryHandler(intelRepo ports.IntelRepository) AnalyzeOrderProfitQueryHandler {
	return AnalyzeOrderProfitQueryHandler{
		intelRepo: intelRepo,
		now:       time.Now,
	}
}

// Handle validates the prospective lines through the same domain rules as
// intake, then analyzes them.
func (h AnalyzeOrderProfitQueryHandler) Handle(
	ctx context.Context,
	query AnalyzeOrderProfitQuery,
) (AnalyzeOrderProfitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AnalyzeOrderProfitQueryResponse{}, err
	}

	items := make([]order.LineItem, 0, len(query.Items()))
	productIDs := make([]string, 0, len(query.Items()))
	totalValue := decimal.Zero
	for _, input := range query.Items() {
		item, err := order.NewLineItem(input.ProductID, input.Name, input.Quantity, input.UnitPrice, input.UnitCost)
		if err != nil {
			return AnalyzeOrderProfitQueryResponse{}, err
		}
		items = append(items, item)
		productIDs = append(productIDs, item.ProductID())
		totalValue = totalValue.Add(item.Total())
	}

	market, err := h.intelRepo.LatestFor(ctx, productIDs)
	if err != nil {
		return AnalyzeOrderProfitQueryResponse{}, errs.NewAnalysisDataError(strings.Join(productIDs, ", "), err)
	}

	analysis, err := h.analyzer.Analyze(items, totalValue, market, h.now().UTC())
	if err != nil {
		return AnalyzeOrderProfitQueryResponse{}, err
	}

	return AnalyzeOrderProfitQueryResponse{
		TotalValue:           totalValue,
		PredictedProfit:      analysis.PredictedProfit(),
		ProfitMargin:         analysis.ProfitMargin(),
		RiskScore:            analysis.RiskScore(),
		Confidence:           analysis.Confidence(),
		OptimalShipping:      string(analysis.OptimalShipping()),
		RecommendedInsurance: analysis.RecommendedInsurance(),
	}, nil
}
