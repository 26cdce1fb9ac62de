// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer contact data is denormalized into the row: it is a snapshot
// taken at order creation, not a join to the customers table. Trip costs and
// payments are small append-only collections owned by the order, stored as
// JSON documents in the row itself.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"index"`
	Notes           string
	TotalAmount     decimal.Decimal `gorm:"type:decimal(20,4)"`
	NetAmount       decimal.Decimal `gorm:"type:decimal(20,4)"`
	TripCosts       string          `gorm:"type:jsonb"`
	Payments        string          `gorm:"type:jsonb"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time
	Lines           []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line. Lines are immutable once the order is
// created; Idx preserves their original ordering.
type LineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx         int       `gorm:"primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4)"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(20,4)"`
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

type tripCostJSON struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type paymentJSON struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var customerID *uuid.UUID
	if id := aggregate.Customer().CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:     aggregate.ID().Bytes(),
			Idx:         i,
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			Subtotal:    line.Subtotal(),
		})
	}

	tripCosts := make([]tripCostJSON, 0, len(aggregate.TripCosts()))
	for _, cost := range aggregate.TripCosts() {
		tripCosts = append(tripCosts, tripCostJSON{
			Amount:      cost.Amount(),
			Description: cost.Description(),
		})
	}
	tripCostsRaw, err := json.Marshal(tripCosts)
	if err != nil {
		return OrderDTO{}, err
	}

	payments := make([]paymentJSON, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		payments = append(payments, paymentJSON{
			Kind:   string(payment.Kind()),
			Amount: payment.Amount(),
		})
	}
	paymentsRaw, err := json.Marshal(payments)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      customerID,
		CustomerName:    aggregate.Customer().Name(),
		CustomerAddress: aggregate.Customer().Address(),
		CustomerPhone:   aggregate.Customer().Phone(),
		DriverID:        driverID,
		Status:          aggregate.Status().String(),
		Notes:           aggregate.Notes(),
		TotalAmount:     aggregate.TotalAmount(),
		NetAmount:       aggregate.NetAmount(),
		TripCosts:       string(tripCostsRaw),
		Payments:        string(paymentsRaw),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Lines:           lines,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines, trip costs and
// payments using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	snapshot, err := order.NewCustomerSnapshot(
		customerID,
		dto.CustomerName,
		dto.CustomerAddress,
		dto.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.ProductName, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var tripCostsRaw []tripCostJSON
	if dto.TripCosts != "" {
		if err = json.Unmarshal([]byte(dto.TripCosts), &tripCostsRaw); err != nil {
			return nil, err
		}
	}
	tripCosts := make([]order.TripCost, 0, len(tripCostsRaw))
	for _, raw := range tripCostsRaw {
		cost, costErr := order.NewTripCost(raw.Amount, raw.Description)
		if costErr != nil {
			return nil, costErr
		}
		tripCosts = append(tripCosts, cost)
	}

	var paymentsRaw []paymentJSON
	if dto.Payments != "" {
		if err = json.Unmarshal([]byte(dto.Payments), &paymentsRaw); err != nil {
			return nil, err
		}
	}
	payments := make([]order.Payment, 0, len(paymentsRaw))
	for _, raw := range paymentsRaw {
		payment, paymentErr := order.NewPayment(order.PaymentKind(raw.Kind), raw.Amount)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, payment)
	}

	return order.RestoreOrder(
		id,
		snapshot,
		driverID,
		status,
		dto.Notes,
		lines,
		tripCosts,
		payments,
		dto.TotalAmount,
		dto.NetAmount,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
