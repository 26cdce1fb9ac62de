package register

import (
	"errors"
	"fmt"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrRegisterIsNotConstructed is returned when a Register instance was not created
	// through proper constructors.
	ErrRegisterIsNotConstructed = errors.New("Register must be created via NewRegister constructor")
)

// Register is the cash drawer for one calendar day. At most one register
// exists per date; the uniqueness is enforced at the open-register command
// against the repository.
//
// Invariants maintained by this aggregate:
//   - deposits and withdrawals are append-only and accepted only while open
//   - settlement totals are a last-write-wins snapshot of the day's
//     completed-order payments, pushed in by the settlement sync
//   - closing freezes the drawer and computes
//     closing = opening + totalCash + totalPix + Σ deposits − Σ withdrawals
//
// The struct uses private fields to ensure encapsulation; it can only be
// created through NewRegister or restored via RestoreRegister.
type Register struct {
	id             kernel.UUID
	date           kernel.Date
	status         Status
	openingBalance decimal.Decimal
	totalCash      decimal.Decimal
	totalPix       decimal.Decimal
	deposits       []Movement
	withdrawals    []Movement
	closingBalance decimal.Decimal
	notes          string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewRegister opens the register for a date with an opening balance.
// The opening balance must not be negative.
func NewRegister(id kernel.UUID, date kernel.Date, openingBalance decimal.Decimal) (*Register, error) {
	r := &Register{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDate(date),
		r.setOpeningBalance(openingBalance),
	); err != nil {
		return nil, err
	}

	r.totalCash = decimal.Zero
	r.totalPix = decimal.Zero
	r.closingBalance = decimal.Zero

	now := time.Now()
	r.createdAt = now
	r.updatedAt = now

	return r, nil
}

// RestoreRegister recreates a Register from persistence.
func RestoreRegister(
	id kernel.UUID,
	date kernel.Date,
	status Status,
	openingBalance decimal.Decimal,
	totalCash decimal.Decimal,
	totalPix decimal.Decimal,
	deposits []Movement,
	withdrawals []Movement,
	closingBalance decimal.Decimal,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Register, error) {
	r := &Register{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDate(date),
		r.setStatus(status),
		r.setOpeningBalance(openingBalance),
		r.setMovements(&r.deposits, deposits),
		r.setMovements(&r.withdrawals, withdrawals),
	); err != nil {
		return nil, err
	}

	r.totalCash = totalCash
	r.totalPix = totalPix
	r.closingBalance = closingBalance
	r.createdAt = createdAt
	r.updatedAt = updatedAt

	return r, nil
}

// Validate ensures the Register instance was properly constructed.
func (r *Register) Validate() error {
	if !r.isConstructed {
		return ErrRegisterIsNotConstructed
	}
	return nil
}

// IsEqual compares registers by identity.
func (r *Register) IsEqual(other *Register) bool {
	return r.id.IsEqual(other.id)
}

// ID returns the register's unique identifier.
func (r *Register) ID() kernel.UUID {
	return r.id
}

// Date returns the calendar day this register covers.
func (r *Register) Date() kernel.Date {
	return r.date
}

// Status returns the current register status.
func (r *Register) Status() Status {
	return r.status
}

// OpeningBalance returns the cash in the drawer when the day opened.
func (r *Register) OpeningBalance() decimal.Decimal {
	return r.openingBalance
}

// TotalCash returns the synced cash total from completed orders.
func (r *Register) TotalCash() decimal.Decimal {
	return r.totalCash
}

// TotalPix returns the synced pix total from completed orders.
func (r *Register) TotalPix() decimal.Decimal {
	return r.totalPix
}

// Deposits returns a copy of the deposit list in insertion order.
func (r *Register) Deposits() []Movement {
	out := make([]Movement, len(r.deposits))
	copy(out, r.deposits)
	return out
}

// Withdrawals returns a copy of the withdrawal list in insertion order.
func (r *Register) Withdrawals() []Movement {
	out := make([]Movement, len(r.withdrawals))
	copy(out, r.withdrawals)
	return out
}

// ClosingBalance returns the frozen closing balance. It is zero until the
// register is closed.
func (r *Register) ClosingBalance() decimal.Decimal {
	return r.closingBalance
}

// Notes returns the closing notes.
func (r *Register) Notes() string {
	return r.notes
}

// CreatedAt returns when the register was opened.
func (r *Register) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the register was last modified.
func (r *Register) UpdatedAt() time.Time {
	return r.updatedAt
}

// Deposit appends a cash deposit. Only an open register accepts deposits.
func (r *Register) Deposit(movement Movement) error {
	if err := r.status.ValidateMutation("deposit"); err != nil {
		return err
	}
	if err := movement.Validate(); err != nil {
		return err
	}

	r.deposits = append(r.deposits, movement)
	r.touch()
	return nil
}

// Withdraw appends a cash withdrawal. Only an open register accepts
// withdrawals; there is no ceiling on the amount.
func (r *Register) Withdraw(movement Movement) error {
	if err := r.status.ValidateMutation("withdraw"); err != nil {
		return err
	}
	if err := movement.Validate(); err != nil {
		return err
	}

	r.withdrawals = append(r.withdrawals, movement)
	r.touch()
	return nil
}

// SetSettlementTotals overwrites the synced cash and pix totals with the
// latest aggregation of the day's completed orders. Last write wins.
func (r *Register) SetSettlementTotals(totalCash, totalPix decimal.Decimal) error {
	if err := r.status.ValidateMutation("update settlement totals"); err != nil {
		return err
	}
	if totalCash.IsNegative() || totalPix.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"settlement totals",
			fmt.Errorf("cash %s and pix %s must not be negative", totalCash, totalPix),
		)
	}

	r.totalCash = totalCash
	r.totalPix = totalPix
	r.touch()
	return nil
}

// Close freezes the register, computing the closing balance from the opening
// balance, the synced settlement totals and the day's movements.
func (r *Register) Close(notes string) error {
	status, err := r.status.Close()
	if err != nil {
		return err
	}

	r.status = status
	r.notes = notes
	r.closingBalance = r.openingBalance.
		Add(r.totalCash).
		Add(r.totalPix).
		Add(sumMovements(r.deposits)).
		Sub(sumMovements(r.withdrawals))
	r.touch()
	return nil
}

func (r *Register) touch() {
	r.updatedAt = time.Now()
}

func (r *Register) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Register) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	r.date = date
	return nil
}

func (r *Register) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Register) setOpeningBalance(openingBalance decimal.Decimal) error {
	if openingBalance.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"opening balance",
			fmt.Errorf("%s is negative", openingBalance),
		)
	}
	r.openingBalance = openingBalance
	return nil
}

func (r *Register) setMovements(target *[]Movement, movements []Movement) error {
	for _, m := range movements {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	*target = make([]Movement, len(movements))
	copy(*target, movements)
	return nil
}

func sumMovements(movements []Movement) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range movements {
		sum = sum.Add(m.Amount())
	}
	return sum
}
