// Package orderrepo provides the store-backed implementation of the order
// repository, with mapping between order aggregates and their JSON records.
package orderrepo

import (
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
)

// OrderDTO is the JSON record stored in the orders collection. Field names
// match the wire format of the order API.
type OrderDTO struct {
	OrderID         string     `json:"order_id"`
	CustomerID      string     `json:"customer_id"`
	FarmerID        *string    `json:"farmer_id"`
	BalerID         *string    `json:"baler_id"`
	BaleType        string     `json:"bale_type"`
	Quantity        int        `json:"quantity"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveryLat     *float64   `json:"delivery_lat,omitempty"`
	DeliveryLng     *float64   `json:"delivery_lng,omitempty"`
	PickupDate      time.Time  `json:"pickup_date"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DeliveredAt     *time.Time `json:"delivered_at"`
	Notes           string     `json:"notes"`
	FieldAddress    string     `json:"field_address,omitempty"`
	FieldLat        *float64   `json:"field_lat,omitempty"`
	FieldLng        *float64   `json:"field_lng,omitempty"`
	Version         int        `json:"version"`
}

// fromDomain converts an order aggregate to its stored record.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		OrderID:         aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		BaleType:        aggregate.BaleType(),
		Quantity:        aggregate.Quantity(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupDate:      aggregate.PickupDate(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Notes:           aggregate.Notes(),
		FieldAddress:    aggregate.FieldAddress(),
		Version:         aggregate.Version(),
	}

	if id := aggregate.FarmerID(); id != nil {
		s := id.String()
		dto.FarmerID = &s
	}
	if id := aggregate.BalerID(); id != nil {
		s := id.String()
		dto.BalerID = &s
	}
	if point := aggregate.DeliveryLocation(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.DeliveryLat, dto.DeliveryLng = &lat, &lng
	}
	if point := aggregate.FieldLocation(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.FieldLat, dto.FieldLng = &lat, &lng
	}

	return dto
}

// toDomain reconstructs an order aggregate from its stored record.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.IDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	farmerID, err := optionalID(dto.FarmerID)
	if err != nil {
		return nil, err
	}
	balerID, err := optionalID(dto.BalerID)
	if err != nil {
		return nil, err
	}

	deliveryLocation, err := optionalPoint(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}
	fieldLocation, err := optionalPoint(dto.FieldLat, dto.FieldLng)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, farmerID, balerID,
		dto.BaleType, dto.Quantity, dto.DeliveryAddress, deliveryLocation,
		dto.PickupDate, dto.Notes, dto.FieldAddress, fieldLocation,
		status, dto.CreatedAt, dto.DeliveredAt, dto.Version,
	)
}

func optionalID(s *string) (*kernel.ID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := kernel.IDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
