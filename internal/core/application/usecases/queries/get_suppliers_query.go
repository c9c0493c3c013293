package queries

import (
	"errors"

	"exportpro/internal/pkg/guard"
)

var ErrGetSuppliersQueryIsNotConstructed = errors.New(
	"GetSuppliersQuery must be created via NewGetSuppliersQuery constructor",
)

// GetSuppliersQuery retrieves suppliers ordered by reliability, optionally
// filtered by supplier type.
type GetSuppliersQuery struct {
	kind string

	guard guard.ConstructorGuard
}

// NewGetSuppliersQuery creates a query to list suppliers. An empty kind lists
// every supplier.
func NewGetSuppliersQuery(kind string) GetSuppliersQuery {
	return GetSuppliersQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetSuppliersQueryIsNotConstructed)
}

// Kind returns the supplier type filter, empty for no filter.
func (q GetSuppliersQuery) Kind() string {
	return q.kind
}

// GetSuppliersQueryResponse is one supplier row in the listing.
type GetSuppliersQueryResponse struct {
	ID               string
	Name             string
	Kind             string
	State            string
	District         string
	ReliabilityScore int
}
