package document

import (
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/order"
)

// unitWeightKg is the assumed shipping weight per quantity unit.
const unitWeightKg = 0.5

// LineView is a flattened order line for rendering.
type LineView struct {
	ProductID string
	Name      string
	Quantity  float64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	WeightKg  float64
}

// Content is everything a renderer needs to produce one document.
type Content struct {
	Kind          Kind
	OrderNumber   string
	IssuedAt      time.Time
	ClientCompany string
	ClientContact string
	ClientEmail   string
	Lines         []LineView
	TotalValue    decimal.Decimal
	Currency      string
	PaymentTerms  string
	DeliveryTerms string
	PackageCount  int
	TotalWeightKg float64
}

// ContentFor assembles the content view for one document kind of an order.
// Package count is one package per line and weight assumes half a kilogram
// per quantity unit.
func ContentFor(kind Kind, o *order.Order, issuedAt time.Time) (Content, error) {
	if err := kind.Validate(); err != nil {
		return Content{}, err
	}
	if err := o.Validate(); err != nil {
		return Content{}, err
	}

	items := o.Items()
	lines := make([]LineView, 0, len(items))
	totalWeight := 0.0
	for _, item := range items {
		weight := item.Quantity() * unitWeightKg
		totalWeight += weight
		lines = append(lines, LineView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Total:     item.Total(),
			WeightKg:  weight,
		})
	}

	client := o.Client()
	details := o.Details()
	return Content{
		Kind:          kind,
		OrderNumber:   o.Number().String(),
		IssuedAt:      issuedAt,
		ClientCompany: client.CompanyName(),
		ClientContact: client.ContactPerson(),
		ClientEmail:   client.Email(),
		Lines:         lines,
		TotalValue:    details.TotalValue(),
		Currency:      details.Currency(),
		PaymentTerms:  details.PaymentTerms(),
		DeliveryTerms: details.DeliveryTerms(),
		PackageCount:  len(items),
		TotalWeightKg: totalWeight,
	}, nil
}
