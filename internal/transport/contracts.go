package transport

import (
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

// pickupDateLayout is the wire format for pickup dates.
const pickupDateLayout = "2006-01-02"

// Request contracts for each operation. Identifier and coordinate fields
// arrive as strings and floats and are parsed into domain values by the
// dispatcher; parse failures surface as 400 outcomes.

// AuthRequest is the payload of OpAuth.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of OpRegister.
type RegisterRequest struct {
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// CreateOrderRequest is the payload of OpCreateOrder.
type CreateOrderRequest struct {
	CustomerID      string   `json:"customer_id"`
	BaleType        string   `json:"bale_type"`
	Quantity        int      `json:"quantity"`
	DeliveryAddress string   `json:"delivery_address"`
	DeliveryLat     *float64 `json:"delivery_lat"`
	DeliveryLng     *float64 `json:"delivery_lng"`
	PickupDate      string   `json:"pickup_date"`
	Notes           string   `json:"notes"`
}

// GetOrdersRequest is the payload of OpGetOrders. All filters are optional.
type GetOrdersRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
	FarmerID   string `json:"farmer_id,omitempty"`
	BalerID    string `json:"baler_id,omitempty"`
	Status     string `json:"status,omitempty"`
}

// GetOrderRequest is the payload of OpGetOrder.
type GetOrderRequest struct {
	OrderID string `json:"order_id"`
}

// AcceptOrderRequest is the payload of OpAcceptOrder.
type AcceptOrderRequest struct {
	OrderID      string   `json:"order_id"`
	FarmerID     string   `json:"farmer_id"`
	FieldAddress string   `json:"field_address"`
	FieldLat     *float64 `json:"field_lat"`
	FieldLng     *float64 `json:"field_lng"`
}

// AssignBalerRequest is the payload of OpAssignBaler.
type AssignBalerRequest struct {
	OrderID  string `json:"order_id"`
	FarmerID string `json:"farmer_id"`
	BalerID  string `json:"baler_id"`
}

// UpdateStatusRequest is the payload of OpUpdateStatus. When the target
// status is cancelled and ActorID is set, the dispatcher treats the call as
// a customer cancellation and enforces ownership.
type UpdateStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	ActorID string `json:"actor_id,omitempty"`
}

// GetUsersRequest is the payload of OpGetUsers.
type GetUsersRequest struct {
	UserType string `json:"user_type,omitempty"`
}

// SubmitRatingRequest is the payload of OpSubmitRating.
type SubmitRatingRequest struct {
	OrderID string `json:"order_id"`
	RaterID string `json:"rater_id"`
	RateeID string `json:"ratee_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// GetUserRatingsRequest is the payload of OpGetUserRatings.
type GetUserRatingsRequest struct {
	UserID string `json:"user_id"`
}

// GetOrderRatingsRequest is the payload of OpGetOrderRatings.
type GetOrderRatingsRequest struct {
	OrderID string `json:"order_id"`
}

func parseID(paramName, value string) (kernel.ID, error) {
	if value == "" {
		return kernel.ID{}, errs.NewValueIsRequiredError(paramName)
	}
	id, err := kernel.IDFromString(value)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func parseOptionalID(paramName, value string) (*kernel.ID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseID(paramName, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func parsePickupDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError("pickup_date")
	}
	date, err := time.ParseInLocation(pickupDateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("pickup_date", err)
	}
	return date, nil
}
