package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductsQueryHandler lists in-stock catalog products from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing. Only products with inventory remaining are
// returned.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			category,
			unit_price,
			inventory
		FROM products
		WHERE inventory > 0
	`
	args := []any{}
	if query.Category() != "" {
		sql += ` AND category = ?`
		args = append(args, query.Category())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)
	for rows.Next() {
		var resp GetProductsQueryResponse
		var unitPrice string

		if err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Category,
			&unitPrice,
			&resp.Inventory,
		); err != nil {
			return nil, err
		}

		if resp.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return nil, err
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
