package register

import (
	"fmt"

	"entregas/internal/pkg/errs"
)

// Status represents the lifecycle state of a day's cash register.
//
// State transitions:
//
//	Open ──> Closed
//
// A closed register is frozen: no deposits, withdrawals or settlement
// updates are accepted and it cannot be reopened.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status when the register is opened for a date.
	Open

	// Closed indicates the day has been settled and the closing balance frozen.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Open:    "open",
		Closed:  "closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:   "open",
		Closed: "closed",
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid register status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid register status", s))
	}
	return nil
}

// String returns the wire name of the status ("open", "closed"), or
// "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateMutation checks that the register still accepts movements and
// settlement updates. Only an open register is mutable.
func (s Status) ValidateMutation(action string) error {
	if s != Open {
		return errs.NewInvalidTransitionError(action, s.String())
	}
	return nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Open -> Closed
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidTransitionError("close", s.String())
	}
	return Closed, nil
}
