// Package queries contains read operations in the CQRS architecture.
// Query handlers load aggregates through the repository ports and project
// them into flat view records ready for serialization; views carry the
// snake_case field names of the wire format.
package queries

import (
	"time"

	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/rating"
	"baleconnect/internal/core/domain/model/user"
)

// Placeholders for participant fields on orders whose counterparty is absent
// or was deactivated. Customer fields fall back to "N/A"; farmer and baler
// fields fall back to "-" because those roles are simply not assigned yet in
// the common case.
const (
	missingCustomerField = "N/A"
	missingPartnerField  = "-"
)

// OrderView is the enriched order projection: the stored order record joined
// with the display names and phone numbers of its participants.
type OrderView struct {
	OrderID         string     `json:"order_id"`
	CustomerID      string     `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	FarmerID        *string    `json:"farmer_id"`
	FarmerName      string     `json:"farmer_name"`
	FarmerPhone     string     `json:"farmer_phone"`
	BalerID         *string    `json:"baler_id"`
	BalerName       string     `json:"baler_name"`
	BaleType        string     `json:"bale_type"`
	Quantity        int        `json:"quantity"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveryLat     *float64   `json:"delivery_lat,omitempty"`
	DeliveryLng     *float64   `json:"delivery_lng,omitempty"`
	PickupDate      time.Time  `json:"pickup_date"`
	Status          string     `json:"status"`
	StatusText      string     `json:"status_text"`
	CreatedAt       time.Time  `json:"created_at"`
	DeliveredAt     *time.Time `json:"delivered_at"`
	Notes           string     `json:"notes"`
	FieldAddress    string     `json:"field_address,omitempty"`
	FieldLat        *float64   `json:"field_lat,omitempty"`
	FieldLng        *float64   `json:"field_lng,omitempty"`
	Version         int        `json:"version"`
}

// UserView is the public user projection. It never exposes the credential
// hash.
type UserView struct {
	UserID       string    `json:"user_id"`
	UserType     string    `json:"user_type"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	AvgRating    float64   `json:"avg_rating"`
	TotalRatings int       `json:"total_ratings"`
	CreatedAt    time.Time `json:"created_at"`
}

// RatingView is the rating projection, including the rater's display name.
type RatingView struct {
	RatingID  string    `json:"rating_id"`
	OrderID   string    `json:"order_id"`
	RaterID   string    `json:"rater_id"`
	RaterName string    `json:"rater_name"`
	RateeID   string    `json:"ratee_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRatingsView bundles a user's received ratings with the aggregate
// recomputed from them.
type UserRatingsView struct {
	Ratings   []RatingView `json:"ratings"`
	AvgRating float64      `json:"avg_rating"`
	Total     int          `json:"total_ratings"`
}

func newUserView(aggregate *user.User) UserView {
	return UserView{
		UserID:       aggregate.ID().String(),
		UserType:     aggregate.Role().String(),
		FullName:     aggregate.Name(),
		Phone:        aggregate.Phone(),
		Email:        aggregate.Email(),
		Address:      aggregate.Address(),
		AvgRating:    aggregate.AvgRating(),
		TotalRatings: aggregate.TotalRatings(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// newOrderView projects an order joined against a user lookup table. Missing
// participants render as placeholders instead of failing the whole listing.
func newOrderView(aggregate *order.Order, users map[string]*user.User) OrderView {
	view := OrderView{
		OrderID:         aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		CustomerName:    missingCustomerField,
		CustomerPhone:   missingCustomerField,
		FarmerName:      missingPartnerField,
		FarmerPhone:     missingPartnerField,
		BalerName:       missingPartnerField,
		BaleType:        aggregate.BaleType(),
		Quantity:        aggregate.Quantity(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupDate:      aggregate.PickupDate(),
		Status:          aggregate.Status().String(),
		StatusText:      aggregate.Status().DisplayText(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Notes:           aggregate.Notes(),
		FieldAddress:    aggregate.FieldAddress(),
		Version:         aggregate.Version(),
	}

	if customer, ok := users[view.CustomerID]; ok {
		view.CustomerName = customer.Name()
		view.CustomerPhone = customer.Phone()
	}
	if id := aggregate.FarmerID(); id != nil {
		s := id.String()
		view.FarmerID = &s
		if farmer, ok := users[s]; ok {
			view.FarmerName = farmer.Name()
			view.FarmerPhone = farmer.Phone()
		}
	}
	if id := aggregate.BalerID(); id != nil {
		s := id.String()
		view.BalerID = &s
		if baler, ok := users[s]; ok {
			view.BalerName = baler.Name()
		}
	}
	if point := aggregate.DeliveryLocation(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		view.DeliveryLat, view.DeliveryLng = &lat, &lng
	}
	if point := aggregate.FieldLocation(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		view.FieldLat, view.FieldLng = &lat, &lng
	}

	return view
}

func newRatingView(aggregate *rating.Rating, users map[string]*user.User) RatingView {
	view := RatingView{
		RatingID:  aggregate.ID().String(),
		OrderID:   aggregate.OrderID().String(),
		RaterID:   aggregate.RaterID().String(),
		RaterName: missingCustomerField,
		RateeID:   aggregate.RateeID().String(),
		Score:     aggregate.Score(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if rater, ok := users[view.RaterID]; ok {
		view.RaterName = rater.Name()
	}

	return view
}
