package order

import (
	"fmt"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created through NewPayment.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError("Payment must be created via NewPayment")

// PaymentKind distinguishes how money was received for an order.
type PaymentKind string

const (
	// PaymentCash is money received as physical cash.
	PaymentCash PaymentKind = "cash"

	// PaymentPix is money received through the PIX instant-payment network.
	// Completion is asserted by the operator, not confirmed by the network.
	PaymentPix PaymentKind = "pix"
)

// Validate checks that the payment kind is one of the known values.
func (k PaymentKind) Validate() error {
	if k != PaymentCash && k != PaymentPix {
		return errs.NewValueIsInvalidErrorWithCause("payment kind", fmt.Errorf("%q is not cash or pix", string(k)))
	}
	return nil
}

// String returns the wire name of the payment kind.
func (k PaymentKind) String() string {
	return string(k)
}

// Payment records money received against an order. Payments are owned by
// their order, append-only, and never edited or removed. Multiple payments of
// the same kind may coexist; they are summed by kind when settling the day.
//
// The sum of payments is deliberately not constrained to equal the order
// total: real-world cash handling is imprecise, so partial and over-payments
// are both representable and never block completion.
type Payment struct {
	kind   PaymentKind
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPayment creates a payment of the given kind. The amount must be positive.
func NewPayment(kind PaymentKind, amount decimal.Decimal) (Payment, error) {
	if err := kind.Validate(); err != nil {
		return Payment{}, err
	}
	if !amount.IsPositive() {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"payment amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	return Payment{
		kind:   kind,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payment was created through NewPayment.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// Kind returns how the money was received.
func (p Payment) Kind() PaymentKind {
	return p.kind
}

// Amount returns the amount received.
func (p Payment) Amount() decimal.Decimal {
	return p.amount
}
