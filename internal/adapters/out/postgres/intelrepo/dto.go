// Package intelrepo provides read access to market intelligence records
// collected by the external market data pipeline.
package intelrepo

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/intel"
)

// IntelDTO represents one observed market intelligence row. The collection
// pipeline appends rows; this side only reads the newest per product.
type IntelDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	ProductID       string          `gorm:"index:idx_intel_product_observed,priority:1"`
	ObservedAt      time.Time       `gorm:"index:idx_intel_product_observed,priority:2,sort:desc"`
	HasPrediction   bool
	PredictedPrice  decimal.Decimal `gorm:"type:numeric"`
	Confidence      float64
	RiskFactors     string
	PriceVolatility float64
	Arbitrage       string
}

// TableName specifies the database table name for intelligence rows.
func (IntelDTO) TableName() string {
	return "market_intelligence"
}

// riskFactorSeparator joins risk factors into a single column. Factors are
// short labels and never contain the separator.
const riskFactorSeparator = "|"

// toDomain converts a database row to an intelligence record.
func toDomain(dto IntelDTO) *intel.Record {
	record := &intel.Record{
		ProductID: dto.ProductID,
		Timestamp: dto.ObservedAt,
		Arbitrage: dto.Arbitrage,
	}

	if dto.HasPrediction {
		record.Prediction = &intel.PricePrediction{
			Value:      dto.PredictedPrice,
			Confidence: dto.Confidence,
		}
	}

	if dto.RiskFactors != "" || dto.PriceVolatility != 0 {
		var factors []string
		if dto.RiskFactors != "" {
			factors = strings.Split(dto.RiskFactors, riskFactorSeparator)
		}
		record.Trends = &intel.MarketTrends{
			RiskFactors:     factors,
			PriceVolatility: dto.PriceVolatility,
		}
	}

	return record
}

// fromRecord converts an intelligence record to a database row. Used by
// tests and by the collection pipeline's writer.
func fromRecord(record *intel.Record) IntelDTO {
	dto := IntelDTO{
		ProductID:  record.ProductID,
		ObservedAt: record.Timestamp,
		Arbitrage:  record.Arbitrage,
	}

	if record.Prediction != nil {
		dto.HasPrediction = true
		dto.PredictedPrice = record.Prediction.Value
		dto.Confidence = record.Prediction.Confidence
	}

	if record.Trends != nil {
		dto.RiskFactors = strings.Join(record.Trends.RiskFactors, riskFactorSeparator)
		dto.PriceVolatility = record.Trends.PriceVolatility
	}

	return dto
}
