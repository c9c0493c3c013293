package order

import (
	"errors"
	"fmt"

	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered product within an order. It has no identity
// outside its parent order. The line total is derived from quantity and
// unit price at construction; any total supplied by the caller is ignored.
type LineItem struct {
	productID string
	name      string
	quantity  float64
	unitPrice decimal.Decimal
	unitCost  decimal.Decimal
	total     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item. Quantity must be positive; unit price and
// unit cost must be non-negative. A missing unit cost is passed as zero.
func NewLineItem(productID, name string, quantity float64, unitPrice, unitCost decimal.Decimal) (LineItem, error) {
	if productID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("product id")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	if unitCost.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unit cost",
			fmt.Errorf("%s is negative", unitCost))
	}

	qty := decimal.NewFromFloat(quantity)
	return LineItem{
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		unitCost:  unitCost,
		total:     unitPrice.Mul(qty),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product identifier.
func (li LineItem) ProductID() string {
	return li.productID
}

// Name returns the display name of the product, possibly empty.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() float64 {
	return li.quantity
}

// UnitPrice returns the selling price per unit.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// UnitCost returns the procurement cost per unit; zero when unknown.
func (li LineItem) UnitCost() decimal.Decimal {
	return li.unitCost
}

// Total returns the derived line total (quantity × unit price).
func (li LineItem) Total() decimal.Decimal {
	return li.total
}

// CostTotal returns quantity × unit cost.
func (li LineItem) CostTotal() decimal.Decimal {
	return li.unitCost.Mul(decimal.NewFromFloat(li.quantity))
}
