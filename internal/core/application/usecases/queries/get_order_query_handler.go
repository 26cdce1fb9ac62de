package queries

import (
	"context"

	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/ports"
)

// GetOrderQueryHandler serves the full order view. The order's owned
// collections live with the aggregate, so the view is built by loading it
// through the repository instead of re-decoding rows here.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order views.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle loads the order and maps it to the response shape.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return mapOrderToResponse(aggregate), nil
}

func mapOrderToResponse(aggregate *order.Order) GetOrderQueryResponse {
	lines := make([]OrderLineResponse, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineResponse{
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			Subtotal:    line.Subtotal(),
		})
	}

	tripCosts := make([]OrderTripCostResponse, 0, len(aggregate.TripCosts()))
	for _, cost := range aggregate.TripCosts() {
		tripCosts = append(tripCosts, OrderTripCostResponse{
			Amount:      cost.Amount(),
			Description: cost.Description(),
		})
	}

	payments := make([]OrderPaymentResponse, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		payments = append(payments, OrderPaymentResponse{
			Kind:   string(payment.Kind()),
			Amount: payment.Amount(),
		})
	}

	customer := aggregate.Customer()

	return GetOrderQueryResponse{
		ID:              aggregate.ID(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		CustomerAddress: customer.Address(),
		DriverID:        aggregate.Driver(),
		Status:          aggregate.Status().String(),
		Notes:           aggregate.Notes(),
		Lines:           lines,
		TotalAmount:     aggregate.TotalAmount(),
		TripCosts:       tripCosts,
		NetAmount:       aggregate.NetAmount(),
		Payments:        payments,
	}
}
