// Package ratingrepo provides the store-backed implementation of the rating
// repository.
package ratingrepo

import (
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"
)

// RatingDTO is the JSON record stored in the ratings collection.
type RatingDTO struct {
	RatingID  string    `json:"rating_id"`
	OrderID   string    `json:"order_id"`
	RaterID   string    `json:"rater_id"`
	RateeID   string    `json:"ratee_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		RatingID:  aggregate.ID().String(),
		OrderID:   aggregate.OrderID().String(),
		RaterID:   aggregate.RaterID().String(),
		RateeID:   aggregate.RateeID().String(),
		Score:     aggregate.Score(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.IDFromString(dto.RatingID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.IDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	raterID, err := kernel.IDFromString(dto.RaterID)
	if err != nil {
		return nil, err
	}
	rateeID, err := kernel.IDFromString(dto.RateeID)
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, orderID, raterID, rateeID, dto.Score, dto.Comment, dto.CreatedAt)
}
