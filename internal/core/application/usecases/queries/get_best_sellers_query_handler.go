package queries

import (
	"context"

	"entregas/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBestSellersQueryHandler ranks products by quantity sold.
type GetBestSellersQueryHandler struct {
	db *gorm.DB
}

// NewGetBestSellersQueryHandler creates a handler for the best-sellers
// ranking. Requires a GORM database connection for query execution.
func NewGetBestSellersQueryHandler(db *gorm.DB) GetBestSellersQueryHandler {
	return GetBestSellersQueryHandler{db: db}
}

// Handle executes the query and returns the ranking, highest quantity
// first.
func (h GetBestSellersQueryHandler) Handle(
	ctx context.Context,
	query GetBestSellersQuery,
) ([]BestSellerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			SUM(quantity) AS quantity_sold,
			SUM(subtotal) AS revenue
		FROM order_lines
		GROUP BY product_id, product_name
		ORDER BY quantity_sold DESC, product_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sellers := make([]BestSellerResponse, 0)

	for rows.Next() {
		var seller BestSellerResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&seller.ProductName,
			&seller.QuantitySold,
			&seller.Revenue,
		); err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		seller.ProductID = productID

		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sellers, nil
}
