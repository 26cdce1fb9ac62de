package http

// Request DTOs for the ledger API. Amounts travel as strings so clients
// cannot lose cents to float representation; they are parsed with
// shopspring/decimal on the way in.

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string                   `json:"customerId" validate:"omitempty,uuid"`
	CustomerName    string                   `json:"customerName" validate:"required"`
	CustomerAddress string                   `json:"customerAddress"`
	CustomerPhone   string                   `json:"customerPhone"`
	Notes           string                   `json:"notes"`
	Lines           []CreateOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CreateOrderLineRequest is one line of a new order.
type CreateOrderLineRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice   string `json:"unitPrice" validate:"required"`
}

// AssignOrderRequest is the body of POST /api/v1/orders/:id/assign.
type AssignOrderRequest struct {
	DriverID string `json:"driverId" validate:"required,uuid"`
}

// AddTripCostRequest is the body of POST /api/v1/orders/:id/trip-costs.
type AddTripCostRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AddPaymentRequest is the body of POST /api/v1/orders/:id/payments.
type AddPaymentRequest struct {
	Kind   string `json:"kind" validate:"required,oneof=cash pix"`
	Amount string `json:"amount" validate:"required"`
}

// ProcessReturnRequest is the body of POST /api/v1/orders/:id/return.
type ProcessReturnRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// UpdateReturnStatusRequest is the body of PUT /api/v1/orders/:id/return-status.
type UpdateReturnStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// OpenRegisterRequest is the body of POST /api/v1/registers.
type OpenRegisterRequest struct {
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	OpeningBalance string `json:"openingBalance" validate:"required"`
}

// CloseRegisterRequest is the body of POST /api/v1/registers/:date/close.
type CloseRegisterRequest struct {
	Notes string `json:"notes"`
}

// RegisterMovementRequest is the body of the register deposit and
// withdrawal endpoints.
type RegisterMovementRequest struct {
	Amount string `json:"amount" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	CostPrice    string `json:"costPrice" validate:"required"`
	SellingPrice string `json:"sellingPrice" validate:"required"`
	InitialStock int    `json:"initialStock" validate:"gte=0"`
}

// AdjustStockRequest is the body of POST /api/v1/products/:id/movements.
type AdjustStockRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=increase decrease"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"required"`
}

// PurchaseWithNewCostRequest is the body of POST /api/v1/products/:id/purchases.
type PurchaseWithNewCostRequest struct {
	CostPrice string `json:"costPrice" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RecordCustomerTransactionRequest is the body of
// POST /api/v1/customers/:id/transactions.
type RecordCustomerTransactionRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=credit debit"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description"`
}

// RecordCostRequest is the body of POST /api/v1/costs.
type RecordCostRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Notes       string `json:"notes"`
}
