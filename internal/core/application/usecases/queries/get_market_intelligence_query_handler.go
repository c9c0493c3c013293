package queries

import (
	"context"
	"time"

	"exportpro/internal/core/domain/model/intel"
	"exportpro/internal/core/ports"
)

// GetMarketIntelligenceQueryHandler serves trend lookups from the
// intelligence store, reporting staleness instead of serving old data as
// fresh.
type GetMarketIntelligenceQueryHandler struct {
	intelRepo ports.IntelRepository
	now       func() time.Time
}

// NewGetMarketIntelligenceQueryHandler creates a handler for trend lookups.
func NewGetMarketIntelligenceQueryHandler(intelRepo ports.IntelRepository) GetMarketIntelligenceQueryHandler {
	return GetMarketIntelligenceQueryHandler{
		intelRepo: intelRepo,
		now:       time.Now,
	}
}

// Handle returns the latest trends for the product. Fresh is false when no
// record exists or the record is older than the intelligence window.
func (h GetMarketIntelligenceQueryHandler) Handle(
	ctx context.Context,
	query GetMarketIntelligenceQuery,
) (GetMarketIntelligenceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMarketIntelligenceQueryResponse{}, err
	}

	record, err := h.intelRepo.Latest(ctx, query.ProductID())
	if err != nil {
		return GetMarketIntelligenceQueryResponse{}, err
	}

	resp := GetMarketIntelligenceQueryResponse{ProductID: query.ProductID()}
	if record == nil {
		return resp, nil
	}

	resp.ObservedAt = record.Timestamp
	resp.Arbitrage = record.Arbitrage
	if record.Trends != nil {
		resp.RiskFactors = record.Trends.RiskFactors
		resp.PriceVolatility = record.Trends.PriceVolatility
	}
	resp.Fresh = record.IsFresh(h.now().UTC(), intel.IntelligenceWindow)
	return resp, nil
}

// GetPricePredictionQueryHandler serves prediction lookups from the
// intelligence store.
type GetPricePredictionQueryHandler struct {
	intelRepo ports.IntelRepository
	now       func() time.Time
}

// NewGetPricePredictionQueryHandler creates a handler for prediction lookups.
func NewGetPricePredictionQueryHandler(intelRepo ports.IntelRepository) GetPricePredictionQueryHandler {
	return GetPricePredictionQueryHandler{
		intelRepo: intelRepo,
		now:       time.Now,
	}
}

// Handle returns the latest prediction for the product. Fresh is false when
// no prediction exists or it is older than the prediction window.
func (h GetPricePredictionQueryHandler) Handle(
	ctx context.Context,
	query GetPricePredictionQuery,
) (GetPricePredictionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPricePredictionQueryResponse{}, err
	}

	record, err := h.intelRepo.Latest(ctx, query.ProductID())
	if err != nil {
		return GetPricePredictionQueryResponse{}, err
	}

	resp := GetPricePredictionQueryResponse{ProductID: query.ProductID()}
	if record == nil || !record.HasPrediction() {
		return resp, nil
	}

	resp.ObservedAt = record.Timestamp
	resp.PredictedPrice = record.Prediction.Value
	resp.Confidence = record.Prediction.Confidence
	resp.Fresh = record.IsFresh(h.now().UTC(), intel.PredictionWindow)
	return resp, nil
}

// GetArbitrageQueryHandler lists arbitrage opportunities observed within the
// arbitrage window.
type GetArbitrageQueryHandler struct {
	intelRepo ports.IntelRepository
	now       func() time.Time
}

// NewGetArbitrageQueryHandler creates a handler for arbitrage listings.
func NewGetArbitrageQueryHandler(intelRepo ports.IntelRepository) GetArbitrageQueryHandler {
	return GetArbitrageQueryHandler{
		intelRepo: intelRepo,
		now:       time.Now,
	}
}

// Handle lists current arbitrage opportunities, newest first.
func (h GetArbitrageQueryHandler) Handle(
	ctx context.Context,
	query GetArbitrageQuery,
) ([]GetArbitrageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	since := h.now().UTC().Add(-intel.ArbitrageWindow)
	records, err := h.intelRepo.Arbitrage(ctx, since)
	if err != nil {
		return nil, err
	}

	opportunities := make([]GetArbitrageQueryResponse, 0, len(records))
	for _, record := range records {
		opportunities = append(opportunities, GetArbitrageQueryResponse{
			ProductID:   record.ProductID,
			ObservedAt:  record.Timestamp,
			Opportunity: record.Arbitrage,
		})
	}
	return opportunities, nil
}
