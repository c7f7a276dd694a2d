package commands

import (
	"errors"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrCancelOrderCommandIsNotConstructed is returned when a CancelOrderCommand
// was not created via its constructor.
var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer withdrawing their own order.
// Unlike a plain status update, the handler checks that the actor is the
// customer who created the order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command for a customer to cancel an order.
func NewCancelOrderCommand(orderID, customerID kernel.ID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.ID { return c.orderID }

// CustomerID returns the customer requesting the cancellation.
func (c CancelOrderCommand) CustomerID() kernel.ID { return c.customerID }

func (c *CancelOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = customerID
	return nil
}
