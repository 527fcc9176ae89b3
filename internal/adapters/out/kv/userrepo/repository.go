// Package userrepo persists identity profiles as JSON documents in the
// key-value store under the "user:" prefix, keyed by the gateway-resolved
// user ID.
package userrepo

import (
	"context"
	"encoding/json"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/ports"
)

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func fromDomain(aggregate *user.User) userDTO {
	return userDTO{
		ID:        aggregate.ID().String(),
		Email:     aggregate.Email(),
		Name:      aggregate.Name(),
		Role:      aggregate.Role().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto userDTO) (*user.User, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.Name, user.Role(dto.Role), dto.CreatedAt)
}

// Repository implements ports.UserRepository on top of the key-value store.
type Repository struct {
	store ports.KVStore
}

// NewRepository creates a new user repository.
func NewRepository(store ports.KVStore) *Repository {
	return &Repository{store: store}
}

func key(id kernel.UUID) string {
	return ports.UserKeyPrefix + id.String()
}

// Add persists a new profile. A second signup under the same user ID is
// rejected instead of overwriting the stored role.
func (r *Repository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	_, err = r.store.Swap(ctx, key(aggregate.ID()), value, ports.InsertVersion)
	return err
}

// Update replaces an existing profile's stored state.
// Returns errs.ErrObjectNotFound if the profile does not exist.
func (r *Repository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, key(aggregate.ID())); err != nil {
		return err
	}

	value, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	_, err = r.store.Set(ctx, key(aggregate.ID()), value)
	return err
}

// Get retrieves a profile by the gateway-resolved user ID.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, err := r.store.Get(ctx, key(id))
	if err != nil {
		return nil, err
	}

	var dto userDTO
	if err = json.Unmarshal(record.Value, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored profile.
func (r *Repository) GetAll(ctx context.Context) ([]*user.User, error) {
	records, err := r.store.ScanByPrefix(ctx, ports.UserKeyPrefix)
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(records))
	for _, record := range records {
		var dto userDTO
		if err = json.Unmarshal(record.Value, &dto); err != nil {
			return nil, err
		}

		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, aggregate)
	}

	return users, nil
}
