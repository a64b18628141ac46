// Package usecase declares the application use case interfaces consumed by
// the delivery layer.
package usecase

import (
	"context"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	"github.com/Vets4Warriors/backend/internal/domain/query"
)

// LocationUsecase defines the location catalog use cases. Write payloads
// arrive untyped and pass through the normalizer before anything touches the
// store; list parameters pass through the query builder.
type LocationUsecase interface {
	// Create normalizes and validates a creation payload, persists the
	// resulting location and returns it with its assigned id.
	Create(ctx context.Context, payload map[string]any) (*entity.Location, error)

	// Get retrieves a single location by id.
	Get(ctx context.Context, id string) (*entity.Location, error)

	// List retrieves all locations matching the filter parameters.
	List(ctx context.Context, params query.Params) ([]*entity.Location, error)

	// Update applies a partial update built from the payload: only fields
	// present and well-typed are merged, absent fields are left untouched.
	Update(ctx context.Context, id string, payload map[string]any) (*entity.Location, error)

	// Delete removes a location and its embedded ratings.
	Delete(ctx context.Context, id string) error

	// Rate validates a rating payload and atomically appends it to the
	// location's ratings, returning the refreshed location.
	Rate(ctx context.Context, id string, payload map[string]any) (*entity.Location, error)
}
