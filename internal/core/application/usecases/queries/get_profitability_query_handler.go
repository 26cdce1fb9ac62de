package queries

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProfitabilityQueryHandler builds the per-product profitability view.
// SQL sums quantities and revenue per product and delivery outcome; the
// profit and margin arithmetic stays in Go where decimals are exact.
type GetProfitabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetProfitabilityQueryHandler creates a handler for profitability
// views. Requires a GORM database connection for query execution.
func NewGetProfitabilityQueryHandler(db *gorm.DB) GetProfitabilityQueryHandler {
	return GetProfitabilityQueryHandler{db: db}
}

// Handle executes the query and returns one row per product that still
// exists in the catalog, sorted by name.
func (h GetProfitabilityQueryHandler) Handle(
	ctx context.Context,
	query GetProfitabilityQuery,
) ([]ProductProfitabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			products.id,
			products.name,
			products.cost_price,
			orders.status = ? AS completed,
			SUM(order_lines.quantity),
			SUM(order_lines.subtotal)
		FROM order_lines
		INNER JOIN orders ON orders.id = order_lines.order_id
		INNER JOIN products ON products.id = order_lines.product_id
		GROUP BY products.id, products.name, products.cost_price, completed
		ORDER BY products.name, products.id
	`, order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]ProductProfitabilityResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var costPrice decimal.Decimal
		var completed bool
		var quantity int
		var revenue decimal.Decimal

		if err = rows.Scan(&id, &name, &costPrice, &completed, &quantity, &revenue); err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		pos, ok := index[productID]
		if !ok {
			pos = len(results)
			index[productID] = pos
			results = append(results, ProductProfitabilityResponse{
				ProductID:   productID,
				ProductName: name,
			})
		}

		profit := revenue.Sub(costPrice.Mul(decimal.NewFromInt(int64(quantity))))
		if completed {
			results[pos].CompletedQuantity = quantity
			results[pos].CompletedRevenue = revenue
			results[pos].CompletedProfit = profit
		} else {
			results[pos].PendingQuantity += quantity
			results[pos].PendingRevenue = results[pos].PendingRevenue.Add(revenue)
			results[pos].PendingProfit = results[pos].PendingProfit.Add(profit)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		totalRevenue := results[i].CompletedRevenue.Add(results[i].PendingRevenue)
		if totalRevenue.IsPositive() {
			totalProfit := results[i].CompletedProfit.Add(results[i].PendingProfit)
			results[i].Margin = totalProfit.
				Div(totalRevenue).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
	}

	return results, nil
}
