package order

import (
	"errors"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order is created with an empty line list.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
)

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle from creation through assignment, the delivery run,
// and completion, and it owns the trip-cost and payment ledgers attached to
// that lifecycle.
//
// Order maintains these invariants:
//   - the line list is non-empty and immutable after creation
//   - totalAmount is the sum of line subtotals, fixed at creation
//   - netAmount == totalAmount − Σ tripCosts, recomputed on every trip-cost mutation
//   - status transitions follow Pending → Assigned → InProgress → Completed
//   - payments are append-only and never edited
//
// The struct uses private fields to ensure encapsulation; it can only be
// created through NewOrder or restored from persistence via RestoreOrder.
type Order struct {
	id kernel.UUID

	// customer is the snapshot frozen at creation time
	customer CustomerSnapshot

	// driverID is the assigned driver's ID (nil until assigned)
	driverID *kernel.UUID

	status Status
	notes  string

	// lines are immutable after creation and fix totalAmount
	lines       []Line
	totalAmount decimal.Decimal

	// tripCosts is ordered and addressed by position
	tripCosts []TripCost
	netAmount decimal.Decimal

	// payments is append-only
	payments []Payment

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no trip costs and no
// payments. The line list must be non-empty and every line valid; the order
// total is fixed from the lines and the net amount starts equal to it.
//
// Returns a validation error if the id, customer snapshot, or any line is
// invalid, or if the line list is empty.
func NewOrder(id kernel.UUID, customer CustomerSnapshot, notes string, lines []Line) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumLineSubtotals(o.lines)
	o.netAmount = o.totalAmount
	o.tripCosts = []TripCost{}
	o.payments = []Payment{}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its lines, trip costs, payments, and stored derived amounts.
// Unlike NewOrder it does not reset the lifecycle: the restored order behaves
// identically to one that reached the same state through domain operations.
func RestoreOrder(
	id kernel.UUID,
	customer CustomerSnapshot,
	driverID *kernel.UUID,
	status Status,
	notes string,
	lines []Line,
	tripCosts []TripCost,
	payments []Payment,
	totalAmount decimal.Decimal,
	netAmount decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setLines(lines),
		o.setDriverID(driverID),
		o.setStatus(status),
		o.setTripCosts(tripCosts),
		o.setPayments(payments),
	); err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	o.netAmount = netAmount
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer snapshot frozen at creation time.
func (o *Order) Customer() CustomerSnapshot {
	return o.customer
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the free-text order notes.
func (o *Order) Notes() string {
	return o.notes
}

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalAmount returns the sum of line subtotals, fixed at creation.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// TripCosts returns a copy of the ordered trip-cost list.
func (o *Order) TripCosts() []TripCost {
	costs := make([]TripCost, len(o.tripCosts))
	copy(costs, o.tripCosts)
	return costs
}

// NetAmount returns the order total minus accumulated trip costs.
func (o *Order) NetAmount() decimal.Decimal {
	return o.netAmount
}

// Payments returns a copy of the append-only payment list.
func (o *Order) Payments() []Payment {
	payments := make([]Payment, len(o.payments))
	copy(payments, o.payments)
	return payments
}

// PaymentTotal returns the sum of recorded payments of the given kind.
func (o *Order) PaymentTotal(kind PaymentKind) decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.payments {
		if p.Kind() == kind {
			total = total.Add(p.Amount())
		}
	}
	return total
}

// CreatedAt returns the creation timestamp. The creation date groups the
// order into a cash-register day for settlement.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign hands the order to a driver and transitions it to Assigned.
// Legal only from Pending; reassignment is not supported.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.touch()
	return nil
}

// Start marks the delivery run as underway. Legal only from Assigned.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete marks the order as delivered. Legal only from InProgress.
//
// Completion never checks the payment sum against the order total: partial
// and over-payments are representable, and the daily settlement reports what
// was actually recorded.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AddTripCost appends an expense incurred during the delivery run and
// recomputes the net amount. Legal only while Assigned or InProgress.
func (o *Order) AddTripCost(cost TripCost) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateTripCostMutation(); err != nil {
		return err
	}

	o.tripCosts = append(o.tripCosts, cost)
	o.recomputeNetAmount()
	o.touch()
	return nil
}

// RemoveTripCost removes the trip cost at the given position and recomputes
// the net amount. Returns an out-of-range error if the index is invalid.
func (o *Order) RemoveTripCost(index int) error {
	if index < 0 || index >= len(o.tripCosts) {
		return errs.NewValueIsOutOfRangeError("trip cost index", index, 0, len(o.tripCosts)-1)
	}

	o.tripCosts = append(o.tripCosts[:index], o.tripCosts[index+1:]...)
	o.recomputeNetAmount()
	o.touch()
	return nil
}

// AddPayment appends a payment to the order. Payments are never removed or
// edited, and their sum is not constrained against the order total.
func (o *Order) AddPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	o.payments = append(o.payments, payment)
	o.touch()
	return nil
}

// ValidateDelete checks whether the order may be physically deleted.
// Only Pending orders can be deleted; deletion substitutes for cancellation.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

// recomputeNetAmount re-derives net = total − Σ trip costs.
// Called on every trip-cost mutation so the stored scalar never drifts
// from its source list.
func (o *Order) recomputeNetAmount() {
	costs := decimal.Zero
	for _, c := range o.tripCosts {
		costs = costs.Add(c.Amount())
	}
	o.netAmount = o.totalAmount.Sub(costs)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer CustomerSnapshot) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTripCosts(costs []TripCost) error {
	for _, c := range costs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	o.tripCosts = make([]TripCost, len(costs))
	copy(o.tripCosts, costs)
	return nil
}

func (o *Order) setPayments(payments []Payment) error {
	for _, p := range payments {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	o.payments = make([]Payment, len(payments))
	copy(o.payments, payments)
	return nil
}

func sumLineSubtotals(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
