package order

import (
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the fixed currency unit in which order totals are
// expressed. The core performs no currency conversion.
const ReportingCurrency = "INR"

// Details carries the order-level financial summary. The total value is
// derived from line items by the aggregate and is never set independently.
type Details struct {
	totalValue    decimal.Decimal
	currency      string
	paymentTerms  string
	deliveryTerms string
}

func newDetails(totalValue decimal.Decimal, paymentTerms, deliveryTerms string) Details {
	return Details{
		totalValue:    totalValue,
		currency:      ReportingCurrency,
		paymentTerms:  paymentTerms,
		deliveryTerms: deliveryTerms,
	}
}

// TotalValue returns the sum of all line totals.
func (d Details) TotalValue() decimal.Decimal {
	return d.totalValue
}

// Currency returns the reporting currency.
func (d Details) Currency() string {
	return d.currency
}

// PaymentTerms returns the agreed payment terms, possibly empty.
func (d Details) PaymentTerms() string {
	return d.paymentTerms
}

// DeliveryTerms returns the agreed delivery terms, possibly empty.
func (d Details) DeliveryTerms() string {
	return d.deliveryTerms
}
