// Package userrepo provides the store-backed implementation of the user
// repository.
package userrepo

import (
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
)

// UserDTO is the JSON record stored in the users collection.
type UserDTO struct {
	UserID       string    `json:"user_id"`
	UserType     string    `json:"user_type"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Address      string    `json:"address,omitempty"`
	AvgRating    float64   `json:"avg_rating"`
	TotalRatings int       `json:"total_ratings"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		UserID:       aggregate.ID().String(),
		UserType:     aggregate.Role().String(),
		FullName:     aggregate.Name(),
		Phone:        aggregate.Phone(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Address:      aggregate.Address(),
		AvgRating:    aggregate.AvgRating(),
		TotalRatings: aggregate.TotalRatings(),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.IDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}
	role, err := user.RoleFromString(dto.UserType)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id, role,
		dto.FullName, dto.Phone, dto.Email, dto.PasswordHash, dto.Address,
		dto.AvgRating, dto.TotalRatings,
		dto.Active, dto.CreatedAt,
	)
}
