package orderrepo

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// StoreOrderRepository implements ports.OrderRepository on top of the
// collection store. The whole orders collection is read, modified and
// replaced on every mutation; the mutex keeps the read-modify-write cycle
// atomic within the process, and the per-record version check rejects stale
// aggregates.
type StoreOrderRepository struct {
	mu    sync.Mutex
	store ports.Store
}

// NewStoreOrderRepository creates an order repository over the given store.
func NewStoreOrderRepository(store ports.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: store}
}

// Add persists a new order.
func (r *StoreOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	for _, dto := range dtos {
		if dto.OrderID == aggregate.ID().String() {
			return errs.NewValueIsInvalidError("order_id already exists: " + dto.OrderID)
		}
	}

	dtos = append(dtos, fromDomain(aggregate))
	return r.writeAll(ctx, dtos)
}

// Update persists changes to an existing order. The stored record must carry
// the same version the aggregate was loaded with; the write bumps it.
func (r *StoreOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	for i, dto := range dtos {
		if dto.OrderID != aggregate.ID().String() {
			continue
		}
		if dto.Version != aggregate.Version() {
			return errs.NewVersionIsInvalidErrorWithCause("order " + dto.OrderID)
		}
		updated := fromDomain(aggregate)
		updated.Version = aggregate.Version() + 1
		dtos[i] = updated
		return r.writeAll(ctx, dtos)
	}

	return errs.NewObjectNotFoundError("order", aggregate.ID().String())
}

// Get retrieves an order by identifier.
func (r *StoreOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.OrderID == id.String() {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// List retrieves orders matching the filter, newest first.
func (r *StoreOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		if !matches(dto, filter) {
			continue
		}
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})

	return orders, nil
}

func matches(dto OrderDTO, filter ports.OrderFilter) bool {
	if filter.CustomerID != nil && dto.CustomerID != filter.CustomerID.String() {
		return false
	}
	if filter.FarmerID != nil && (dto.FarmerID == nil || *dto.FarmerID != filter.FarmerID.String()) {
		return false
	}
	if filter.BalerID != nil && (dto.BalerID == nil || *dto.BalerID != filter.BalerID.String()) {
		return false
	}
	if filter.Status != nil && dto.Status != filter.Status.String() {
		return false
	}
	return true
}

func (r *StoreOrderRepository) readAll(ctx context.Context) ([]OrderDTO, error) {
	data, err := r.store.GetCollection(ctx, ports.OrdersCollection)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var dtos []OrderDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.NewStorageUnavailableError("decode orders", err)
	}
	return dtos, nil
}

func (r *StoreOrderRepository) writeAll(ctx context.Context, dtos []OrderDTO) error {
	data, err := json.Marshal(dtos)
	if err != nil {
		return errs.NewStorageUnavailableError("encode orders", err)
	}
	return r.store.PutCollection(ctx, ports.OrdersCollection, data)
}
