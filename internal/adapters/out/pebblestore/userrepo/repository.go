package userrepo

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// StoreUserRepository implements ports.UserRepository on top of the
// collection store.
type StoreUserRepository struct {
	mu    sync.Mutex
	store ports.Store
}

// NewStoreUserRepository creates a user repository over the given store.
func NewStoreUserRepository(store ports.Store) *StoreUserRepository {
	return &StoreUserRepository{store: store}
}

// Add persists a new user. The email must not already be registered.
func (r *StoreUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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
		if strings.EqualFold(dto.Email, aggregate.Email()) {
			return errs.NewValueIsInvalidError("email already registered")
		}
		if dto.UserID == aggregate.ID().String() {
			return errs.NewValueIsInvalidError("user_id already exists: " + dto.UserID)
		}
	}

	dtos = append(dtos, fromDomain(aggregate))
	return r.writeAll(ctx, dtos)
}

// Update persists changes to an existing user.
func (r *StoreUserRepository) Update(ctx context.Context, aggregate *user.User) error {
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
		if dto.UserID == aggregate.ID().String() {
			dtos[i] = fromDomain(aggregate)
			return r.writeAll(ctx, dtos)
		}
	}

	return errs.NewObjectNotFoundError("user", aggregate.ID().String())
}

// Get retrieves a user by identifier.
func (r *StoreUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
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
		if dto.UserID == id.String() {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("user", id.String())
}

// GetByEmail retrieves a user by login email. Matching is case-insensitive.
func (r *StoreUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if strings.EqualFold(dto.Email, email) {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("user", email)
}

// List retrieves active users sorted by name, optionally narrowed to one role.
func (r *StoreUserRepository) List(ctx context.Context, role *user.Role) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		if !dto.Active {
			continue
		}
		if role != nil && dto.UserType != role.String() {
			continue
		}
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, aggregate)
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Name() < users[j].Name()
	})

	return users, nil
}

func (r *StoreUserRepository) readAll(ctx context.Context) ([]UserDTO, error) {
	data, err := r.store.GetCollection(ctx, ports.UsersCollection)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var dtos []UserDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.NewStorageUnavailableError("decode users", err)
	}
	return dtos, nil
}

func (r *StoreUserRepository) writeAll(ctx context.Context, dtos []UserDTO) error {
	data, err := json.Marshal(dtos)
	if err != nil {
		return errs.NewStorageUnavailableError("encode users", err)
	}
	return r.store.PutCollection(ctx, ports.UsersCollection, data)
}
