package http

import (
	"time"

	"entregas/internal/core/application/usecases/queries"
)

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// OrderLineResponse is one line of an order reply.
type OrderLineResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

// TripCostResponse is one booked expense of an order reply.
type TripCostResponse struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// PaymentResponse is one recorded payment of an order reply.
type PaymentResponse struct {
	Kind   string `json:"kind"`
	Amount string `json:"amount"`
}

// OrderResponse is the full order reply of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerAddress string              `json:"customerAddress"`
	CustomerPhone   string              `json:"customerPhone"`
	DriverID        *string             `json:"driverId"`
	Status          string              `json:"status"`
	Notes           string              `json:"notes"`
	Lines           []OrderLineResponse `json:"lines"`
	TotalAmount     string              `json:"totalAmount"`
	TripCosts       []TripCostResponse  `json:"tripCosts"`
	NetAmount       string              `json:"netAmount"`
	Payments        []PaymentResponse   `json:"payments"`
}

func orderResponseFrom(view queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Subtotal:    line.Subtotal.StringFixed(2),
		})
	}

	tripCosts := make([]TripCostResponse, 0, len(view.TripCosts))
	for _, cost := range view.TripCosts {
		tripCosts = append(tripCosts, TripCostResponse{
			Amount:      cost.Amount.StringFixed(2),
			Description: cost.Description,
		})
	}

	payments := make([]PaymentResponse, 0, len(view.Payments))
	for _, payment := range view.Payments {
		payments = append(payments, PaymentResponse{
			Kind:   payment.Kind,
			Amount: payment.Amount.StringFixed(2),
		})
	}

	var driverID *string
	if view.DriverID != nil {
		raw := view.DriverID.String()
		driverID = &raw
	}

	return OrderResponse{
		ID:              view.ID.String(),
		CustomerName:    view.CustomerName,
		CustomerAddress: view.CustomerAddress,
		CustomerPhone:   view.CustomerPhone,
		DriverID:        driverID,
		Status:          view.Status,
		Notes:           view.Notes,
		Lines:           lines,
		TotalAmount:     view.TotalAmount.StringFixed(2),
		TripCosts:       tripCosts,
		NetAmount:       view.NetAmount.StringFixed(2),
		Payments:        payments,
	}
}

// OrderSummaryResponse is one row of an order list reply.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	TotalAmount  string    `json:"totalAmount"`
	NetAmount    string    `json:"netAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func orderSummariesFrom(views []queries.OrderSummaryResponse) []OrderSummaryResponse {
	summaries := make([]OrderSummaryResponse, 0, len(views))
	for _, view := range views {
		summaries = append(summaries, OrderSummaryResponse{
			ID:           view.ID.String(),
			CustomerName: view.CustomerName,
			Status:       view.Status,
			TotalAmount:  view.TotalAmount.StringFixed(2),
			NetAmount:    view.NetAmount.StringFixed(2),
			CreatedAt:    view.CreatedAt,
		})
	}
	return summaries
}

// SettlementResponse is the reply of GET /api/v1/settlements/:date.
type SettlementResponse struct {
	Date         string `json:"date"`
	TotalCash    string `json:"totalCash"`
	TotalPix     string `json:"totalPix"`
	TotalPending string `json:"totalPending"`
}

// ProfitabilityResponse is one row of the profitability report.
type ProfitabilityResponse struct {
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	CompletedQuantity int    `json:"completedQuantity"`
	CompletedRevenue  string `json:"completedRevenue"`
	CompletedProfit   string `json:"completedProfit"`
	PendingQuantity   int    `json:"pendingQuantity"`
	PendingRevenue    string `json:"pendingRevenue"`
	PendingProfit     string `json:"pendingProfit"`
	Margin            string `json:"margin"`
}

// BestSellerResponse is one row of the best-sellers ranking.
type BestSellerResponse struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	QuantitySold int    `json:"quantitySold"`
	Revenue      string `json:"revenue"`
}

// CategoryCostResponse is one category's total of the daily cost reply.
type CategoryCostResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// DailyCostsResponse is the reply of GET /api/v1/costs/:date.
type DailyCostsResponse struct {
	Date       string                 `json:"date"`
	Categories []CategoryCostResponse `json:"categories"`
	Total      string                 `json:"total"`
}

// PixCodeResponse carries one encoded BR Code payload.
type PixCodeResponse struct {
	Payload string `json:"payload"`
}
