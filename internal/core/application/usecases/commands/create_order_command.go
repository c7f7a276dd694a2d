package commands

import (
	"errors"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request for baled residue.
// Encapsulates the order form: residue type, quantity, delivery destination
// and the requested pickup date.
//
// Example:
//
//	orderID := kernel.NewID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "rice_straw", 20,
//	    "99 Moo 4, San Sai, Chiang Mai", nil, pickupDate, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(orderRepo, userRepo)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.ID
	customerID       kernel.ID
	baleType         string
	quantity         int
	deliveryAddress  string
	deliveryLocation *kernel.GeoPoint
	pickupDate       time.Time
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new bale order.
// Field-level validation is deliberately shallow here; the order aggregate
// re-validates everything and reports all violations together.
func NewCreateOrderCommand(
	orderID kernel.ID,
	customerID kernel.ID,
	baleType string,
	quantity int,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	pickupDate time.Time,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		baleType:         baleType,
		quantity:         quantity,
		deliveryAddress:  deliveryAddress,
		deliveryLocation: deliveryLocation,
		pickupDate:       pickupDate,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.ID { return c.orderID }

// CustomerID returns the identifier of the requesting customer.
func (c CreateOrderCommand) CustomerID() kernel.ID { return c.customerID }

// BaleType returns the requested residue type.
func (c CreateOrderCommand) BaleType() string { return c.baleType }

// Quantity returns the requested number of bales.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// DeliveryAddress returns the free-text delivery address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// DeliveryLocation returns the picked delivery coordinates, or nil.
func (c CreateOrderCommand) DeliveryLocation() *kernel.GeoPoint { return c.deliveryLocation }

// PickupDate returns the requested pickup date.
func (c CreateOrderCommand) PickupDate() time.Time { return c.pickupDate }

// Notes returns the free-text order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = customerID
	return nil
}
