package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"exportpro/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves catalog products with available inventory,
// optionally filtered by category.
type GetProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list available products. An empty
// category lists every category.
func NewGetProductsQuery(category string) GetProductsQuery {
	return GetProductsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Category returns the category filter, empty for no filter.
func (q GetProductsQuery) Category() string {
	return q.category
}

// GetProductsQueryResponse is one product row in the listing.
type GetProductsQueryResponse struct {
	ID        string
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Inventory float64
}
