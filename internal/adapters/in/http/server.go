// Package http exposes the application's use cases over a REST API.
// Handlers bind and validate the request, translate it into a command or
// query, and map domain errors onto HTTP status codes. No business rules
// live here.
package http

import (
	"net/http"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/customer"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/product"
	"entregas/internal/core/domain/model/register"
	"entregas/internal/pkg/pix"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers groups the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder               commands.CreateOrderCommandHandler
	AssignOrder               commands.AssignOrderCommandHandler
	StartOrder                commands.StartOrderCommandHandler
	CompleteOrder             commands.CompleteOrderCommandHandler
	DeleteOrder               commands.DeleteOrderCommandHandler
	AddTripCost               commands.AddTripCostCommandHandler
	RemoveTripCost            commands.RemoveTripCostCommandHandler
	AddPayment                commands.AddPaymentCommandHandler
	ProcessReturn             commands.ProcessReturnCommandHandler
	UpdateReturnStatus        commands.UpdateReturnStatusCommandHandler
	OpenRegister              commands.OpenRegisterCommandHandler
	CloseRegister             commands.CloseRegisterCommandHandler
	RegisterDeposit           commands.RegisterDepositCommandHandler
	RegisterWithdrawal        commands.RegisterWithdrawalCommandHandler
	UpdateSettlementTotals    commands.UpdateSettlementTotalsCommandHandler
	CreateProduct             commands.CreateProductCommandHandler
	AdjustStock               commands.AdjustStockCommandHandler
	PurchaseWithNewCost       commands.PurchaseWithNewCostCommandHandler
	DeleteProduct             commands.DeleteProductCommandHandler
	CreateCustomer            commands.CreateCustomerCommandHandler
	RecordCustomerTransaction commands.RecordCustomerTransactionCommandHandler
	RecordCost                commands.RecordCostCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetPendingOrders   queries.GetPendingOrdersQueryHandler
	GetOrdersByDriver  queries.GetOrdersByDriverQueryHandler
	GetDailySettlement queries.GetDailySettlementQueryHandler
	GetProfitability   queries.GetProfitabilityQueryHandler
	GetBestSellers     queries.GetBestSellersQueryHandler
	GetDailyCosts      queries.GetDailyCostsQueryHandler
}

// PixConfig identifies the merchant in generated BR Codes.
type PixConfig struct {
	Key          string
	MerchantName string
	MerchantCity string
}

// Server dispatches HTTP requests to the application's use cases.
type Server struct {
	handlers Handlers
	pix      PixConfig
	validate *validator.Validate
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(handlers Handlers, pixConfig PixConfig) *Server {
	return &Server{
		handlers: handlers,
		pix:      pixConfig,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/start", s.StartOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/trip-costs", s.AddTripCost)
	api.DELETE("/orders/:id/trip-costs/:index", s.RemoveTripCost)
	api.POST("/orders/:id/payments", s.AddPayment)
	api.POST("/orders/:id/return", s.ProcessReturn)
	api.PUT("/orders/:id/return-status", s.UpdateReturnStatus)
	api.GET("/orders/:id/pix", s.GetOrderPixCode)
	api.GET("/drivers/:id/orders", s.GetOrdersByDriver)

	api.POST("/registers", s.OpenRegister)
	api.POST("/registers/:date/close", s.CloseRegister)
	api.POST("/registers/:date/deposits", s.RegisterDeposit)
	api.POST("/registers/:date/withdrawals", s.RegisterWithdrawal)
	api.POST("/registers/:date/settlement", s.UpdateSettlementTotals)
	api.GET("/settlements/:date", s.GetDailySettlement)

	api.POST("/products", s.CreateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.POST("/products/:id/movements", s.AdjustStock)
	api.POST("/products/:id/purchases", s.PurchaseWithNewCost)

	api.POST("/customers", s.CreateCustomer)
	api.POST("/customers/:id/transactions", s.RecordCustomerTransaction)

	api.POST("/costs", s.RecordCost)
	api.GET("/costs/:date", s.GetDailyCosts)

	api.GET("/reports/profitability", s.GetProfitability)
	api.GET("/reports/best-sellers", s.GetBestSellers)
}

func (s *Server) bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return writeBadRequest(ctx, err.Error())
	}
	return nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func pathDate(ctx echo.Context) (kernel.Date, error) {
	return kernel.DateFromString(ctx.Param("date"))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	var customerID *kernel.UUID
	if request.CustomerID != "" {
		id, err := kernel.UUIDFromString(request.CustomerID)
		if err != nil {
			return writeDomainError(ctx, err)
		}
		customerID = &id
	}

	snapshot, err := order.NewCustomerSnapshot(
		customerID, request.CustomerName, request.CustomerAddress, request.CustomerPhone,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	lines := make([]order.Line, 0, len(request.Lines))
	for _, lineRequest := range request.Lines {
		productID, err := kernel.UUIDFromString(lineRequest.ProductID)
		if err != nil {
			return writeDomainError(ctx, err)
		}
		unitPrice, err := decimal.NewFromString(lineRequest.UnitPrice)
		if err != nil {
			return writeBadRequest(ctx, "invalid unit price: "+lineRequest.UnitPrice)
		}
		line, err := order.NewLine(productID, lineRequest.ProductName, lineRequest.Quantity, unitPrice)
		if err != nil {
			return writeDomainError(ctx, err)
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, snapshot, request.Notes, lines)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(view))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	views, err := s.handlers.GetPendingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFrom(views))
}

// GetOrdersByDriver handles GET /api/v1/drivers/:id/orders.
func (s *Server) GetOrdersByDriver(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetOrdersByDriverQuery(driverID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	views, err := s.handlers.GetOrdersByDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFrom(views))
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request AssignOrderRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, driverID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartOrder handles POST /api/v1/orders/:id/start.
func (s *Server) StartOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewStartOrderCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.StartOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddTripCost handles POST /api/v1/orders/:id/trip-costs.
func (s *Server) AddTripCost(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request AddTripCostRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return writeBadRequest(ctx, "invalid amount: "+request.Amount)
	}

	tripCost, err := order.NewTripCost(amount, request.Description)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewAddTripCostCommand(orderID, tripCost)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.AddTripCost.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveTripCost handles DELETE /api/v1/orders/:id/trip-costs/:index.
func (s *Server) RemoveTripCost(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var index int
	if err := echo.PathParamsBinder(ctx).Int("index", &index).BindError(); err != nil {
		return writeBadRequest(ctx, "invalid trip cost index")
	}

	cmd, err := commands.NewRemoveTripCostCommand(orderID, index)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.RemoveTripCost.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPayment handles POST /api/v1/orders/:id/payments.
func (s *Server) AddPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request AddPaymentRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return writeBadRequest(ctx, "invalid amount: "+request.Amount)
	}

	payment, err := order.NewPayment(order.PaymentKind(request.Kind), amount)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewAddPaymentCommand(orderID, payment)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.AddPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessReturn handles POST /api/v1/orders/:id/return.
func (s *Server) ProcessReturn(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request ProcessReturnRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewProcessReturnCommand(orderID, request.Reason)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.ProcessReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateReturnStatus handles PUT /api/v1/orders/:id/return-status.
func (s *Server) UpdateReturnStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request UpdateReturnStatusRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(orderID, commands.ReturnStatus(request.Status))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.UpdateReturnStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderPixCode handles GET /api/v1/orders/:id/pix. It encodes a static
// BR Code charging the order's net amount to the configured merchant key.
func (s *Server) GetOrderPixCode(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	code := pix.StaticCode{
		Key:          s.pix.Key,
		MerchantName: s.pix.MerchantName,
		MerchantCity: s.pix.MerchantCity,
		Amount:       view.NetAmount,
	}
	payload, err := code.Encode()
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PixCodeResponse{Payload: payload})
}

// OpenRegister handles POST /api/v1/registers.
func (s *Server) OpenRegister(ctx echo.Context) error {
	var request OpenRegisterRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	date, err := kernel.DateFromString(request.Date)
	if err != nil {
		return writeDomainError(ctx, err)
	}
	openingBalance, err := decimal.NewFromString(request.OpeningBalance)
	if err != nil {
		return writeBadRequest(ctx, "invalid opening balance: "+request.OpeningBalance)
	}

	registerID := kernel.NewUUID()
	cmd, err := commands.NewOpenRegisterCommand(registerID, date, openingBalance)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.OpenRegister.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: registerID.String()})
}

// CloseRegister handles POST /api/v1/registers/:date/close.
func (s *Server) CloseRegister(ctx echo.Context) error {
	date, err := pathDate(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request CloseRegisterRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewCloseRegisterCommand(date, request.Notes)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.CloseRegister.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) registerMovement(ctx echo.Context) (kernel.Date, register.Movement, error) {
	date, err := pathDate(ctx)
	if err != nil {
		return kernel.Date{}, register.Movement{}, writeDomainError(ctx, err)
	}

	var request RegisterMovementRequest
	if err := s.bind(ctx, &request); err != nil {
		return kernel.Date{}, register.Movement{}, err
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return kernel.Date{}, register.Movement{}, writeBadRequest(ctx, "invalid amount: "+request.Amount)
	}

	movement, err := register.NewMovement(amount, request.Reason)
	if err != nil {
		return kernel.Date{}, register.Movement{}, writeDomainError(ctx, err)
	}

	return date, movement, nil
}

// RegisterDeposit handles POST /api/v1/registers/:date/deposits.
func (s *Server) RegisterDeposit(ctx echo.Context) error {
	date, movement, err := s.registerMovement(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterDepositCommand(date, movement)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.RegisterDeposit.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterWithdrawal handles POST /api/v1/registers/:date/withdrawals.
func (s *Server) RegisterWithdrawal(ctx echo.Context) error {
	date, movement, err := s.registerMovement(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterWithdrawalCommand(date, movement)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.RegisterWithdrawal.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateSettlementTotals handles POST /api/v1/registers/:date/settlement.
// It recomputes the register's cash and pix totals from the day's orders.
func (s *Server) UpdateSettlementTotals(ctx echo.Context) error {
	date, err := pathDate(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewUpdateSettlementTotalsCommand(date)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.UpdateSettlementTotals.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDailySettlement handles GET /api/v1/settlements/:date.
func (s *Server) GetDailySettlement(ctx echo.Context) error {
	date, err := pathDate(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetDailySettlementQuery(date)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	view, err := s.handlers.GetDailySettlement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SettlementResponse{
		Date:         view.Date.String(),
		TotalCash:    view.TotalCash.StringFixed(2),
		TotalPix:     view.TotalPix.StringFixed(2),
		TotalPending: view.TotalPending.StringFixed(2),
	})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	costPrice, err := decimal.NewFromString(request.CostPrice)
	if err != nil {
		return writeBadRequest(ctx, "invalid cost price: "+request.CostPrice)
	}
	sellingPrice, err := decimal.NewFromString(request.SellingPrice)
	if err != nil {
		return writeBadRequest(ctx, "invalid selling price: "+request.SellingPrice)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, request.Name, request.Description, costPrice, sellingPrice, request.InitialStock,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: productID.String()})
}

// AdjustStock handles POST /api/v1/products/:id/movements.
func (s *Server) AdjustStock(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request AdjustStockRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	movement, err := product.NewMovement(
		kernel.NewUUID(), product.MovementKind(request.Kind), request.Quantity, request.Reason,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewAdjustStockCommand(productID, movement)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PurchaseWithNewCost handles POST /api/v1/products/:id/purchases. When the
// purchase comes in at a different cost the product is forked into a new
// variant; the reply carries the variant's id.
func (s *Server) PurchaseWithNewCost(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request PurchaseWithNewCostRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	costPrice, err := decimal.NewFromString(request.CostPrice)
	if err != nil {
		return writeBadRequest(ctx, "invalid cost price: "+request.CostPrice)
	}

	variantID := kernel.NewUUID()
	cmd, err := commands.NewPurchaseWithNewCostCommand(productID, variantID, costPrice, request.Quantity)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.PurchaseWithNewCost.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: variantID.String()})
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, request.Name, request.Phone, request.Address)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: customerID.String()})
}

// RecordCustomerTransaction handles POST /api/v1/customers/:id/transactions.
func (s *Server) RecordCustomerTransaction(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request RecordCustomerTransactionRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return writeBadRequest(ctx, "invalid amount: "+request.Amount)
	}

	transaction, err := customer.NewTransaction(
		kernel.NewUUID(), customer.TransactionKind(request.Kind), amount, request.Description,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewRecordCustomerTransactionCommand(customerID, transaction)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.RecordCustomerTransaction.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordCost handles POST /api/v1/costs.
func (s *Server) RecordCost(ctx echo.Context) error {
	var request RecordCostRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	date, err := kernel.DateFromString(request.Date)
	if err != nil {
		return writeDomainError(ctx, err)
	}
	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return writeBadRequest(ctx, "invalid amount: "+request.Amount)
	}
	category, err := cost.CategoryFromString(request.Category)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	costID := kernel.NewUUID()
	cmd, err := commands.NewRecordCostCommand(costID, date, request.Description, amount, category, request.Notes)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.RecordCost.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: costID.String()})
}

// GetDailyCosts handles GET /api/v1/costs/:date.
func (s *Server) GetDailyCosts(ctx echo.Context) error {
	date, err := pathDate(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetDailyCostsQuery(date)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	view, err := s.handlers.GetDailyCosts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	categories := make([]CategoryCostResponse, 0, len(view.Categories))
	for _, row := range view.Categories {
		categories = append(categories, CategoryCostResponse{
			Category: row.Category,
			Total:    row.Total.StringFixed(2),
		})
	}

	return ctx.JSON(http.StatusOK, DailyCostsResponse{
		Date:       view.Date.String(),
		Categories: categories,
		Total:      view.Total.StringFixed(2),
	})
}

// GetProfitability handles GET /api/v1/reports/profitability.
func (s *Server) GetProfitability(ctx echo.Context) error {
	query := queries.NewGetProfitabilityQuery()

	views, err := s.handlers.GetProfitability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]ProfitabilityResponse, 0, len(views))
	for _, view := range views {
		response = append(response, ProfitabilityResponse{
			ProductID:         view.ProductID.String(),
			ProductName:       view.ProductName,
			CompletedQuantity: view.CompletedQuantity,
			CompletedRevenue:  view.CompletedRevenue.StringFixed(2),
			CompletedProfit:   view.CompletedProfit.StringFixed(2),
			PendingQuantity:   view.PendingQuantity,
			PendingRevenue:    view.PendingRevenue.StringFixed(2),
			PendingProfit:     view.PendingProfit.StringFixed(2),
			Margin:            view.Margin.StringFixed(2),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBestSellers handles GET /api/v1/reports/best-sellers.
func (s *Server) GetBestSellers(ctx echo.Context) error {
	query := queries.NewGetBestSellersQuery()

	views, err := s.handlers.GetBestSellers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]BestSellerResponse, 0, len(views))
	for _, view := range views {
		response = append(response, BestSellerResponse{
			ProductID:    view.ProductID.String(),
			ProductName:  view.ProductName,
			QuantitySold: view.QuantitySold,
			Revenue:      view.Revenue.StringFixed(2),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
