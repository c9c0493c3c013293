package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ClientRequest struct {
	CompanyName   string `json:"company_name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Quantity  float64         `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

type CreateOrderRequest struct {
	Client        ClientRequest      `json:"client" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentTerms  string             `json:"payment_terms"`
	DeliveryTerms string             `json:"delivery_terms"`
}

type CreateOrderResponse struct {
	OrderID     string   `json:"order_id"`
	OrderNumber string   `json:"order_number"`
	Documents   []string `json:"documents"`
	Issues      []string `json:"issues,omitempty"`
}

type OrderSummaryResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	ClientCompany string          `json:"client_company"`
	Status        string          `json:"status"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}

type AdvanceOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

type AdvanceOrderStatusResponse struct {
	Status    string   `json:"status"`
	Documents []string `json:"documents,omitempty"`
	Issues    []string `json:"issues,omitempty"`
}

type GenerateDocumentsResponse struct {
	Documents []string `json:"documents"`
	Issues    []string `json:"issues,omitempty"`
}

type AnalyzeOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type AnalyzeOrderResponse struct {
	TotalValue           decimal.Decimal `json:"total_value"`
	PredictedProfit      decimal.Decimal `json:"predicted_profit"`
	ProfitMargin         float64         `json:"profit_margin"`
	RiskScore            float64         `json:"risk_score"`
	Confidence           float64         `json:"confidence"`
	OptimalShipping      string          `json:"optimal_shipping"`
	RecommendedInsurance decimal.Decimal `json:"recommended_insurance"`
}

type SupplierLocationRequest struct {
	State    string `json:"state"`
	District string `json:"district"`
	Pincode  string `json:"pincode"`
}

type SupplierContactRequest struct {
	PrimaryContact         string `json:"primary_contact"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email" validate:"omitempty,email"`
	PreferredCommunication string `json:"preferred_communication"`
}

type SupplierMetricsRequest struct {
	ReliabilityScore            int `json:"reliability_score" validate:"gte=0,lte=10"`
	QualityConsistency          int `json:"quality_consistency" validate:"gte=0,lte=10"`
	DeliveryTimeliness          int `json:"delivery_timeliness" validate:"gte=0,lte=10"`
	PriceCompetitiveness        int `json:"price_competitiveness" validate:"gte=0,lte=10"`
	CommunicationResponsiveness int `json:"communication_responsiveness" validate:"gte=0,lte=10"`
}

type SupplierRequest struct {
	Name     string                  `json:"name" validate:"required"`
	Kind     string                  `json:"kind" validate:"required"`
	Location SupplierLocationRequest `json:"location"`
	Contact  SupplierContactRequest  `json:"contact"`
	Metrics  SupplierMetricsRequest  `json:"metrics"`
}

type SupplierSummaryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Kind             string `json:"kind"`
	State            string `json:"state"`
	District         string `json:"district"`
	ReliabilityScore int    `json:"reliability_score"`
}

type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Inventory float64         `json:"inventory" validate:"gte=0"`
}

type ProductSummaryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Inventory float64         `json:"inventory"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MarketIntelligenceResponse struct {
	ProductID       string    `json:"product_id"`
	Fresh           bool      `json:"fresh"`
	ObservedAt      time.Time `json:"observed_at,omitempty"`
	RiskFactors     []string  `json:"risk_factors,omitempty"`
	PriceVolatility float64   `json:"price_volatility"`
	Arbitrage       string    `json:"arbitrage,omitempty"`
}

type PricePredictionResponse struct {
	ProductID      string          `json:"product_id"`
	Fresh          bool            `json:"fresh"`
	ObservedAt     time.Time       `json:"observed_at,omitempty"`
	PredictedPrice decimal.Decimal `json:"predicted_price"`
	Confidence     float64         `json:"confidence"`
}

type ArbitrageResponse struct {
	ProductID   string    `json:"product_id"`
	ObservedAt  time.Time `json:"observed_at"`
	Opportunity string    `json:"opportunity"`
}
