package order

import (
	"errors"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a bale request. It tracks the three-party
// assignment workflow (customer creates, farmer accepts, baler is assigned)
// and enforces the status lifecycle.
//
// Invariants:
//   - id and customerID are set at creation and never change
//   - farmerID is nil until a farmer accepts, then immutable
//   - balerID is nil until assigned, and may only be set after farmerID
//   - status moves through the forward-only lifecycle defined by Status
//   - deliveredAt is stamped exactly when status becomes Delivered
type Order struct {
	id         kernel.ID
	customerID kernel.ID
	farmerID   *kernel.ID
	balerID    *kernel.ID

	baleType         string
	quantity         int
	deliveryAddress  string
	deliveryLocation *kernel.GeoPoint
	pickupDate       time.Time
	notes            string

	// fieldAddress and fieldLocation are recorded by the farmer on accept.
	fieldAddress  string
	fieldLocation *kernel.GeoPoint

	status      Status
	createdAt   time.Time
	deliveredAt *time.Time

	// version supports optimistic concurrency checks in the repository.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no farmer or baler.
//
// Validation mirrors the order form: baleType must be non-empty, quantity
// positive, deliveryAddress non-empty, pickupDate present and not before
// today. All violated fields are reported together via errors.Join.
// deliveryLocation and notes are optional.
func NewOrder(
	id kernel.ID,
	customerID kernel.ID,
	baleType string,
	quantity int,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	pickupDate time.Time,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		createdAt:     time.Now(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setBaleType(baleType),
		o.setQuantity(quantity),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryLocation(deliveryLocation),
		o.setPickupDate(pickupDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time validation, while still enforcing structural invariants:
// the status must be known, a baler requires a farmer, statuses past Pending
// require a farmer, and deliveredAt may only be set on a Delivered order.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	farmerID *kernel.ID,
	balerID *kernel.ID,
	baleType string,
	quantity int,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	pickupDate time.Time,
	notes string,
	fieldAddress string,
	fieldLocation *kernel.GeoPoint,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if balerID != nil && farmerID == nil {
		return nil, errs.NewValueIsInvalidError("baler_id set without farmer_id")
	}
	if farmerID == nil && status != Pending && status != Cancelled {
		return nil, errs.NewValueIsInvalidError("status " + string(status) + " requires a farmer")
	}
	if deliveredAt != nil && status != Delivered {
		return nil, errs.NewValueIsInvalidError("delivered_at set on non-delivered order")
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		farmerID:         farmerID,
		balerID:          balerID,
		baleType:         baleType,
		quantity:         quantity,
		deliveryAddress:  deliveryAddress,
		deliveryLocation: deliveryLocation,
		pickupDate:       pickupDate,
		notes:            notes,
		fieldAddress:     fieldAddress,
		fieldLocation:    fieldLocation,
		status:           status,
		createdAt:        createdAt,
		deliveredAt:      deliveredAt,
		version:          version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID { return o.id }

// CustomerID returns the identifier of the customer who created the order.
func (o *Order) CustomerID() kernel.ID { return o.customerID }

// FarmerID returns the accepting farmer's identifier, or nil before accept.
func (o *Order) FarmerID() *kernel.ID { return o.farmerID }

// BalerID returns the assigned baler's identifier, or nil before assignment.
func (o *Order) BalerID() *kernel.ID { return o.balerID }

// BaleType returns the requested residue type, e.g. "rice_straw".
func (o *Order) BaleType() string { return o.baleType }

// Quantity returns the requested number of bales.
func (o *Order) Quantity() int { return o.quantity }

// DeliveryAddress returns the free-text delivery address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DeliveryLocation returns the picked delivery coordinates, or nil.
func (o *Order) DeliveryLocation() *kernel.GeoPoint { return o.deliveryLocation }

// PickupDate returns the requested pickup date.
func (o *Order) PickupDate() time.Time { return o.pickupDate }

// Notes returns the free-text order notes.
func (o *Order) Notes() string { return o.notes }

// FieldAddress returns the farmer's field address, empty until recorded.
func (o *Order) FieldAddress() string { return o.fieldAddress }

// FieldLocation returns the farmer's field coordinates, or nil.
func (o *Order) FieldLocation() *kernel.GeoPoint { return o.fieldLocation }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// Version returns the optimistic concurrency version of the record.
func (o *Order) Version() int { return o.version }

// Accept records the accepting farmer and moves the order to FarmerAccepted,
// optionally recording the field location supplied by the farmer.
//
// Re-accepting an already-accepted order by the same farmer is a no-op and
// returns nil, so a double-tapped accept never surfaces an error. Any other
// accept outside Pending fails with an invalid transition error.
func (o *Order) Accept(farmerID kernel.ID, fieldAddress string, fieldLocation *kernel.GeoPoint) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	// Idempotent re-accept by the same farmer.
	if o.farmerID != nil && o.farmerID.IsEqual(farmerID) && o.status != Pending {
		return nil
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.farmerID = &farmerID
	if fieldAddress != "" {
		o.fieldAddress = fieldAddress
	}
	if fieldLocation != nil {
		o.fieldLocation = fieldLocation
	}
	return nil
}

// AssignBaler records the baler chosen by the farmer and moves the order to
// BalerAssigned. Only legal while the order is in FarmerAccepted.
func (o *Order) AssignBaler(balerID kernel.ID) error {
	if err := balerID.Validate(); err != nil {
		return err
	}
	if o.farmerID == nil {
		return errs.NewValueIsRequiredError("farmer_id")
	}

	newStatus, err := o.status.AssignBaler()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.balerID = &balerID
	return nil
}

// ChangeStatus moves the order to next if the lifecycle allows it.
// The transition to Delivered stamps deliveredAt with the current time.
func (o *Order) ChangeStatus(next Status) error {
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}

	o.status = next
	if next == Delivered {
		now := time.Now()
		o.deliveredAt = &now
	}
	return nil
}

// Cancel moves the order to Cancelled. Legal from every non-terminal status.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBaleType(baleType string) error {
	if baleType == "" {
		return errs.NewValueIsRequiredError("bale_type")
	}
	o.baleType = baleType
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}

func (o *Order) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickup_date")
	}

	// Local calendar midnight. Truncate would cut to UTC midnight, which in
	// zones east of UTC rejects a same-day pickup parsed at local midnight.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if pickupDate.Before(today) {
		return errs.NewValueIsInvalidError("pickup_date must not be in the past")
	}
	o.pickupDate = pickupDate
	return nil
}
