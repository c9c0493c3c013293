// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index so concurrent intake cannot issue
// the same number twice; the current status is denormalized for listing
// queries while the history table remains the source of truth.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber   string          `gorm:"uniqueIndex"`
	Client        ClientDTO       `gorm:"embedded;embeddedPrefix:client_"`
	TotalValue    decimal.Decimal `gorm:"type:numeric"`
	Currency      string
	PaymentTerms  string
	DeliveryTerms string
	Status        string `gorm:"index"`
	CreatedAt     time.Time

	HasAnalysis bool
	Analysis    AnalysisDTO `gorm:"embedded;embeddedPrefix:analysis_"`

	Items   []OrderItemDTO   `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	History []OrderStatusDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ClientDTO represents the embedded buyer block within the order table.
type ClientDTO struct {
	Company string
	Contact string
	Email   string
}

// AnalysisDTO represents the embedded profitability snapshot within the
// order table. All columns are zero when HasAnalysis is false.
type AnalysisDTO struct {
	PredictedProfit      decimal.Decimal `gorm:"type:numeric"`
	ProfitMargin         float64
	RiskScore            float64
	Confidence           float64
	OptimalShipping      string
	RecommendedInsurance decimal.Decimal `gorm:"type:numeric"`
}

// OrderItemDTO is one order line. Position preserves the original line order.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID string
	Name      string
	Quantity  float64
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	UnitCost  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderStatusDTO is one entry of an order's status history.
type OrderStatusDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	Status     string
	Note       string
	OccurredAt time.Time
}

// TableName specifies the database table name for status history entries.
func (OrderStatusDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   id,
			Position:  i,
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			UnitCost:  item.UnitCost(),
		})
	}

	history := aggregate.History()
	historyDTOs := make([]OrderStatusDTO, 0, len(history))
	for i, change := range history {
		historyDTOs = append(historyDTOs, OrderStatusDTO{
			OrderID:    id,
			Position:   i,
			Status:     string(change.Status()),
			Note:       change.Note(),
			OccurredAt: change.Timestamp(),
		})
	}

	dto := OrderDTO{
		ID:          id,
		OrderNumber: aggregate.Number().String(),
		Client: ClientDTO{
			Company: aggregate.Client().CompanyName(),
			Contact: aggregate.Client().ContactPerson(),
			Email:   aggregate.Client().Email(),
		},
		TotalValue:    aggregate.Details().TotalValue(),
		Currency:      aggregate.Details().Currency(),
		PaymentTerms:  aggregate.Details().PaymentTerms(),
		DeliveryTerms: aggregate.Details().DeliveryTerms(),
		Status:        string(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         itemDTOs,
		History:       historyDTOs,
	}

	if analysis, ok := aggregate.Analysis(); ok {
		dto.HasAnalysis = true
		dto.Analysis = AnalysisDTO{
			PredictedProfit:      analysis.PredictedProfit(),
			ProfitMargin:         analysis.ProfitMargin(),
			RiskScore:            analysis.RiskScore(),
			Confidence:           analysis.Confidence(),
			OptimalShipping:      string(analysis.OptimalShipping()),
			RecommendedInsurance: analysis.RecommendedInsurance(),
		}
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	client, err := order.NewClient(dto.Client.Company, dto.Client.Contact, dto.Client.Email)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(
			itemDTO.ProductID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.UnitCost,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		change, changeErr := order.NewStatusChange(
			order.Status(changeDTO.Status), changeDTO.OccurredAt, changeDTO.Note,
		)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	var analysis *order.Analysis
	if dto.HasAnalysis {
		restored, analysisErr := order.NewAnalysis(
			dto.Analysis.PredictedProfit,
			dto.Analysis.ProfitMargin,
			dto.Analysis.RiskScore,
			dto.Analysis.Confidence,
			order.ShippingMethod(dto.Analysis.OptimalShipping),
			dto.Analysis.RecommendedInsurance,
		)
		if analysisErr != nil {
			return nil, analysisErr
		}
		analysis = &restored
	}

	return order.RestoreOrder(
		id, number, client, items, dto.PaymentTerms, dto.DeliveryTerms, history, analysis, dto.CreatedAt,
	)
}
