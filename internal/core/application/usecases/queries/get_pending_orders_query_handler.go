package queries

import (
	"context"
	"database/sql"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler lists the orders nobody has picked up yet,
// oldest first.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order lists.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the pending orders sorted by
// creation time.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
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
		WHERE status = ?
		ORDER BY created_at
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID

		if err := rows.Scan(
			&id,
			&summary.CustomerName,
			&summary.Status,
			&summary.TotalAmount,
			&summary.NetAmount,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = orderID

		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
