package queries

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBestSellersQueryIsNotConstructed = errors.New(
	"GetBestSellersQuery must be created via NewGetBestSellersQuery constructor",
)

// GetBestSellersQuery retrieves the products ranked by total quantity
// sold. The ranking is built from order lines alone, so products removed
// from the catalog keep their place.
type GetBestSellersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBestSellersQuery creates a best-sellers query. This is a
// parameterless query.
func NewGetBestSellersQuery() GetBestSellersQuery {
	return GetBestSellersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBestSellersQuery) Validate() error {
	return q.guard.Validate(ErrGetBestSellersQueryIsNotConstructed)
}

// BestSellerResponse is one product's row of the best-sellers ranking.
type BestSellerResponse struct {
	ProductID    kernel.UUID
	ProductName  string
	QuantitySold int
	Revenue      decimal.Decimal
}
