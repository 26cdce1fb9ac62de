package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByDriverQueryHandler lists a driver's orders, oldest first.
type GetOrdersByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDriverQueryHandler creates a handler for driver order lists.
// Requires a GORM database connection for query execution.
func NewGetOrdersByDriverQueryHandler(db *gorm.DB) GetOrdersByDriverQueryHandler {
	return GetOrdersByDriverQueryHandler{db: db}
}

// Handle executes the query and returns the driver's orders sorted by
// creation time.
func (h GetOrdersByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDriverQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			total_amount,
			net_amount,
			created_at
		FROM orders
		WHERE driver_id = ?
		ORDER BY created_at
	`, query.DriverID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
