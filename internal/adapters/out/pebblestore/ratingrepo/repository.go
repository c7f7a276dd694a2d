package ratingrepo

import (
	"context"
	"encoding/json"
	"sync"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// StoreRatingRepository implements ports.RatingRepository on top of the
// collection store.
type StoreRatingRepository struct {
	mu    sync.Mutex
	store ports.Store
}

// NewStoreRatingRepository creates a rating repository over the given store.
func NewStoreRatingRepository(store ports.Store) *StoreRatingRepository {
	return &StoreRatingRepository{store: store}
}

// Upsert stores the rating, replacing any previous rating by the same rater
// for the same order.
func (r *StoreRatingRepository) Upsert(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, dto := range dtos {
		if dto.OrderID == aggregate.OrderID().String() && dto.RaterID == aggregate.RaterID().String() {
			dtos[i] = fromDomain(aggregate)
			replaced = true
			break
		}
	}
	if !replaced {
		dtos = append(dtos, fromDomain(aggregate))
	}

	return r.writeAll(ctx, dtos)
}

// GetByOrder retrieves all ratings submitted for an order.
func (r *StoreRatingRepository) GetByOrder(ctx context.Context, orderID kernel.ID) ([]*rating.Rating, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.filter(ctx, func(dto RatingDTO) bool {
		return dto.OrderID == orderID.String()
	})
}

// GetByRatee retrieves all ratings received by a user.
func (r *StoreRatingRepository) GetByRatee(ctx context.Context, rateeID kernel.ID) ([]*rating.Rating, error) {
	if err := rateeID.Validate(); err != nil {
		return nil, err
	}
	return r.filter(ctx, func(dto RatingDTO) bool {
		return dto.RateeID == rateeID.String()
	})
}

func (r *StoreRatingRepository) filter(ctx context.Context, keep func(RatingDTO) bool) ([]*rating.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		if !keep(dto) {
			continue
		}
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, aggregate)
	}

	return ratings, nil
}

func (r *StoreRatingRepository) readAll(ctx context.Context) ([]RatingDTO, error) {
	data, err := r.store.GetCollection(ctx, ports.RatingsCollection)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var dtos []RatingDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.NewStorageUnavailableError("decode ratings", err)
	}
	return dtos, nil
}

func (r *StoreRatingRepository) writeAll(ctx context.Context, dtos []RatingDTO) error {
	data, err := json.Marshal(dtos)
	if err != nil {
		return errs.NewStorageUnavailableError("encode ratings", err)
	}
	return r.store.PutCollection(ctx, ports.RatingsCollection, data)
}
