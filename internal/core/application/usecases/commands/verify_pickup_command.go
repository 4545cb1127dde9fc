package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

var ErrVerifyPickupCommandIsNotConstructed = errors.New(
	"VerifyPickupCommand must be created via NewVerifyPickupCommand constructor",
)

// VerifyPickupCommand represents a pickup verification attempt: the buyer
// presents a six digit code at the counter and the operator submits it
// against a chosen order.
//
// The submitted code is kept verbatim. It is compared by exact string
// equality, so a malformed submission simply fails the comparison instead
// of being rejected up front.
//
// Example:
//
//	cmd, err := NewVerifyPickupCommand(orderID, "482917")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewVerifyPickupCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch {
//	    case errors.Is(err, order.ErrVerificationCodeMismatch):
//	        // wrong code, let the operator retry
//	    case errors.Is(err, order.ErrOrderAlreadyFinalized):
//	        // show the receipt instead
//	    default:
//	        return err
//	    }
//	}
type VerifyPickupCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	submittedCode string

	guard guard.ConstructorGuard
}

// NewVerifyPickupCommand creates a pickup verification command.
// The order ID must be valid and the submitted code non-empty; no other
// shape check is applied to the code.
func NewVerifyPickupCommand(orderID kernel.UUID, submittedCode string) (VerifyPickupCommand, error) {
	cmd := VerifyPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSubmittedCode(submittedCode),
	); err != nil {
		return VerifyPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPickupCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPickupCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being verified.
func (c VerifyPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SubmittedCode returns the code presented by the buyer, verbatim.
func (c VerifyPickupCommand) SubmittedCode() string {
	return c.submittedCode
}

func (c *VerifyPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPickupCommand) setSubmittedCode(submittedCode string) error {
	if submittedCode == "" {
		return errs.NewValueIsRequiredError("submittedCode")
	}

	c.submittedCode = submittedCode
	return nil
}
