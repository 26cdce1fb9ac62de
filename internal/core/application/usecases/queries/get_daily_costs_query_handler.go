package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDailyCostsQueryHandler totals a day's expenses per category.
type GetDailyCostsQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyCostsQueryHandler creates a handler for daily cost views.
// Requires a GORM database connection for query execution.
func NewGetDailyCostsQueryHandler(db *gorm.DB) GetDailyCostsQueryHandler {
	return GetDailyCostsQueryHandler{db: db}
}

// Handle executes the query and returns the per-category totals. Only
// categories with at least one entry appear.
func (h GetDailyCostsQueryHandler) Handle(
	ctx context.Context,
	query GetDailyCostsQuery,
) (GetDailyCostsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyCostsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			SUM(amount) AS total
		FROM costs
		WHERE date = ?
		GROUP BY category
		ORDER BY category
	`, query.Date().Time()).Rows()
	if err != nil {
		return GetDailyCostsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetDailyCostsQueryResponse{
		Date:       query.Date(),
		Categories: make([]CategoryCostResponse, 0),
	}

	for rows.Next() {
		var category CategoryCostResponse

		if err = rows.Scan(&category.Category, &category.Total); err != nil {
			return GetDailyCostsQueryResponse{}, err
		}

		response.Categories = append(response.Categories, category)
		response.Total = response.Total.Add(category.Total)
	}

	if err = rows.Err(); err != nil {
		return GetDailyCostsQueryResponse{}, err
	}

	return response, nil
}
