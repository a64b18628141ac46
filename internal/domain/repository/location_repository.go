// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	"github.com/Vets4Warriors/backend/internal/domain/query"
	"github.com/Vets4Warriors/backend/internal/errors"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no location exists for an id.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateName is returned when a location name collides with an
	// existing record.
	ErrDuplicateName = errors.New("location name already exists")
)

// LocationRepository defines the interface for location-related store
// operations. All state lives behind it; the core holds no shared mutable
// state of its own.
type LocationRepository interface {
	// Create persists a new location and fills in its store-assigned id.
	// Returns ErrDuplicateName when the name is already taken.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a location by its id.
	// Returns ErrLocationNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.Location, error)

	// Query retrieves every location matching all predicates in the chain.
	// An empty chain matches everything. No ordering is imposed beyond the
	// store's intrinsic one.
	Query(ctx context.Context, predicates []query.Predicate) ([]*entity.Location, error)

	// Update applies a partial update to a location. Nil patch fields are
	// left untouched. Returns ErrLocationNotFound if the id is absent and
	// ErrDuplicateName if a name change collides.
	Update(ctx context.Context, id string, patch *entity.LocationPatch) error

	// Delete removes a location together with its embedded ratings.
	// Returns ErrLocationNotFound if the id is absent.
	Delete(ctx context.Context, id string) error

	// AppendRating atomically appends a rating to the location's ratings
	// sequence, without read-modify-write. Returns ErrLocationNotFound if
	// the id is absent.
	AppendRating(ctx context.Context, id string, rating *entity.Rating) error
}
