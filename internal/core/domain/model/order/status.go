package order

import (
	"fmt"

	"storepanel/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> In-process ──┬──> Picked Up   (verification)
//	   │    \──────────────────↗           └──> Delivered   (courier path)
//	   └──────── Cancelled  (from any pre-terminal state)
//
// Picked Up, Delivered and Cancelled are terminal; no transition leaves
// them. Verification can complete an order from any pre-terminal state,
// matching the pickup workflow where an operator may verify a code before
// the order was formally confirmed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status set at order creation.
	Pending

	// Confirmed means the store has accepted the order.
	Confirmed

	// InProcess means the order is being prepared or the service is being
	// performed.
	InProcess

	// PickedUp means the customer collected the order after a successful
	// code verification. Terminal.
	PickedUp

	// Delivered means the order was handed over through the courier path.
	// Terminal.
	Delivered

	// Cancelled means the order was abandoned before completion. Terminal.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InProcess: "In-process",
		PickedUp:  "Picked Up",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InProcess: "In-process",
		PickedUp:  "Picked Up",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the display form used by the panel and by
// persistence ("Pending", "In-process", "Picked Up", ...).
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == PickedUp || s == Delivered || s == Cancelled
}

// IsAwaitingVerification reports whether the verification flow applies:
// true exactly for Pending, Confirmed and In-process.
func (s Status) IsAwaitingVerification() bool {
	return s == Pending || s == Confirmed || s == InProcess
}

// IsCompleted reports whether the order counts as a completed sale
// (Picked Up or Delivered). Cancelled orders are terminal but not
// completed.
func (s Status) IsCompleted() bool {
	return s == PickedUp || s == Delivered
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, s.transitionError("confirm")
	}
	return Confirmed, nil
}

// StartProcessing transitions Pending or Confirmed -> In-process.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, s.transitionError("start processing")
	}
	return InProcess, nil
}

// PickUp transitions any pre-terminal status -> Picked Up. This is the
// only transition driven by code verification.
func (s Status) PickUp() (Status, error) {
	if !s.IsAwaitingVerification() {
		return 0, s.transitionError("pick up")
	}
	return PickedUp, nil
}

// Deliver transitions In-process -> Delivered, the courier handover path.
// Verification never produces Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InProcess {
		return 0, s.transitionError("deliver")
	}
	return Delivered, nil
}

// Cancel transitions any pre-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsAwaitingVerification() {
		return 0, s.transitionError("cancel")
	}
	return Cancelled, nil
}

func (s Status) transitionError(action string) error {
	if s.IsTerminal() {
		return ErrOrderAlreadyFinalized
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
