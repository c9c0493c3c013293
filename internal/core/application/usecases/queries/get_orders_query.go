// Package queries contains read operations for the CQRS read side.
// Query handlers bypass the domain model and read projections straight from
// storage.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders newest first, optionally filtered by their
// current status.
type GetOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. An empty status lists
// every order.
func NewGetOrdersQuery(status order.Status) GetOrdersQuery {
	return GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filter.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// GetOrdersQueryResponse is one order row in the listing.
type GetOrdersQueryResponse struct {
	ID            string
	OrderNumber   string
	ClientCompany string
	Status        string
	TotalValue    decimal.Decimal
	Currency      string
	CreatedAt     time.Time
}
