package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSuppliersQueryHandler lists suppliers from the database, most reliable
// first.
type GetSuppliersQueryHandler struct {
	db *gorm.DB
}

// NewGetSuppliersQueryHandler creates a handler for supplier listings.
func NewGetSuppliersQueryHandler(db *gorm.DB) GetSuppliersQueryHandler {
	return GetSuppliersQueryHandler{db: db}
}

// Handle executes the listing, ordered by reliability score descending.
func (h GetSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetSuppliersQuery,
) ([]GetSuppliersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			kind,
			location_state,
			location_district,
			reliability_score
		FROM suppliers
	`
	args := []any{}
	if query.Kind() != "" {
		sql += ` WHERE kind = ?`
		args = append(args, query.Kind())
	}
	sql += ` ORDER BY reliability_score DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := make([]GetSuppliersQueryResponse, 0)
	for rows.Next() {
		var resp GetSuppliersQueryResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Kind,
			&resp.State,
			&resp.District,
			&resp.ReliabilityScore,
		); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
