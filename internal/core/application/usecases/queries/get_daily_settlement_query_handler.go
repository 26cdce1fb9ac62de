package queries

import (
	"context"

	"entregas/internal/core/domain/services"
	"entregas/internal/core/ports"
)

// GetDailySettlementQueryHandler totals a day's payments by type. Unlike
// the list views this one loads full aggregates: the settlement math
// belongs to the domain service, not to SQL.
type GetDailySettlementQueryHandler struct {
	orderRepository ports.OrderRepository
	calculator      services.SettlementCalculator
}

// NewGetDailySettlementQueryHandler creates a handler for daily
// settlement views.
func NewGetDailySettlementQueryHandler(
	orderRepository ports.OrderRepository,
) GetDailySettlementQueryHandler {
	return GetDailySettlementQueryHandler{
		orderRepository: orderRepository,
		calculator:      services.NewSettlementCalculator(),
	}
}

// Handle executes the query and returns the day's settlement totals.
func (h GetDailySettlementQueryHandler) Handle(
	ctx context.Context,
	query GetDailySettlementQuery,
) (GetDailySettlementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySettlementQueryResponse{}, err
	}

	orders, err := h.orderRepository.GetAllByDate(ctx, query.Date())
	if err != nil {
		return GetDailySettlementQueryResponse{}, err
	}

	settlement, err := h.calculator.Calculate(orders)
	if err != nil {
		return GetDailySettlementQueryResponse{}, err
	}

	return GetDailySettlementQueryResponse{
		Date:         query.Date(),
		TotalCash:    settlement.TotalCash,
		TotalPix:     settlement.TotalPix,
		TotalPending: settlement.TotalPending,
	}, nil
}
