package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Orders are returned in descending creation
// order; a non-empty status in the query filters on the current status.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			client_company,
			status,
			total_value,
			currency,
			created_at
		FROM orders
	`
	args := []any{}
	if query.Status() != "" {
		sql += ` WHERE status = ?`
		args = append(args, string(query.Status()))
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var totalValue string

		if err = rows.Scan(
			&resp.ID,
			&resp.OrderNumber,
			&resp.ClientCompany,
			&resp.Status,
			&totalValue,
			&resp.Currency,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.TotalValue, err = decimal.NewFromString(totalValue); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
