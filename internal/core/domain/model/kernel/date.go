package kernel

import (
	"fmt"
	"time"

	"entregas/internal/pkg/errs"
)

// DateLayout is the wire format for calendar days: ISO-8601 date only.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not properly initialized through
// one of the constructor functions. This error is returned when validating a
// zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"Date must be created via DateOf or DateFromString",
)

// Date is a value object representing a calendar day without a time component.
// It keys the daily ledgers: exactly one cash register day exists per Date, and
// cost entries and settlement aggregations are grouped by it.
//
// The zero value of Date is invalid and must be constructed using DateOf or
// DateFromString. Date is immutable and safe for concurrent use.
//
// Example usage:
//
//	today := kernel.DateOf(time.Now())
//
//	day, err := kernel.DateFromString("2024-06-01")
//	if err != nil {
//	    // handle error
//	}
type Date struct {
	day time.Time
}

// DateOf truncates a time.Time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateFromString parses a Date from its "2006-01-02" representation.
// Returns an error if the string is not a valid calendar day.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a calendar day: %w", s, err))
	}
	return Date{day: t}, nil
}

// String returns the "2006-01-02" representation of the date.
func (d Date) String() string {
	return d.day.Format(DateLayout)
}

// Time returns the underlying midnight-UTC instant of the date.
func (d Date) Time() time.Time {
	return d.day
}

// IsEqual compares two dates for equality.
func (d Date) IsEqual(other Date) bool {
	return d.day.Equal(other.day)
}

// Contains reports whether an instant falls on this calendar day (UTC).
func (d Date) Contains(t time.Time) bool {
	return DateOf(t).IsEqual(d)
}

// Validate checks if the Date is properly constructed.
// Returns ErrDateIsNotConstructed if the Date is a zero value.
func (d Date) Validate() error {
	if d.day.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
