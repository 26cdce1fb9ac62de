package services

import (
	"entregas/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Settlement is the aggregation of one day's orders into register totals.
//
// TotalCash and TotalPix come only from completed orders; every other
// status contributes its full order amount to TotalPending, which is
// reported alongside the register but never folded into its closing
// balance.
type Settlement struct {
	TotalCash    decimal.Decimal
	TotalPix     decimal.Decimal
	TotalPending decimal.Decimal
}

// SettlementCalculator is a domain service that folds a day's orders into
// the settlement totals that feed the cash register.
//
// Business rules:
//   - only completed orders settle; their payments are summed by kind
//   - non-completed orders contribute their total amount to the pending
//     figure, regardless of any payments already recorded on them
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// Calculate folds the given orders into a Settlement. The caller selects
// the orders for the day; the calculator only aggregates.
func (c SettlementCalculator) Calculate(orders []*order.Order) (Settlement, error) {
	settlement := Settlement{
		TotalCash:    decimal.Zero,
		TotalPix:     decimal.Zero,
		TotalPending: decimal.Zero,
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Settlement{}, err
		}

		if o.Status() == order.Completed {
			settlement.TotalCash = settlement.TotalCash.Add(o.PaymentTotal(order.PaymentCash))
			settlement.TotalPix = settlement.TotalPix.Add(o.PaymentTotal(order.PaymentPix))
			continue
		}

		settlement.TotalPending = settlement.TotalPending.Add(o.TotalAmount())
	}

	return settlement, nil
}
