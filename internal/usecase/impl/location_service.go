// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"fmt"

	"github.com/Vets4Warriors/backend/config"
	"github.com/Vets4Warriors/backend/internal/domain/entity"
	domainerrors "github.com/Vets4Warriors/backend/internal/domain/errors"
	"github.com/Vets4Warriors/backend/internal/domain/normalize"
	"github.com/Vets4Warriors/backend/internal/domain/query"
	"github.com/Vets4Warriors/backend/internal/domain/repository"
	"github.com/Vets4Warriors/backend/internal/errors"
	"github.com/Vets4Warriors/backend/internal/usecase"
)

type locationService struct {
	locationRepo repository.LocationRepository
	config       *config.Config
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository, cfg *config.Config) usecase.LocationUsecase {
	// If Search is not configured, provide a default configuration
	if cfg.Search == nil {
		cfg.Search = &config.SearchConfig{
			MaxRadiusMeters: 500_000, // 500km
		}
	}

	return &locationService{
		locationRepo: locationRepo,
		config:       cfg,
	}
}

// Create normalizes, validates and persists a new location.
func (s *locationService) Create(ctx context.Context, payload map[string]any) (*entity.Location, error) {
	location, err := normalize.Location(payload, true)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, domainerrors.ErrDuplicateLocationName.WrapMessage(location.Name)
		}

		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return location, nil
}

// Get retrieves a single location by id.
func (s *locationService) Get(ctx context.Context, id string) (*entity.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage(id)
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}

	return location, nil
}

// List builds the predicate chain for the filter parameters and queries the
// store. The geo radius is clamped to the configured maximum.
func (s *locationService) List(ctx context.Context, params query.Params) ([]*entity.Location, error) {
	if max := s.config.Search.MaxRadiusMeters; max > 0 && params.RangeMeters > max {
		params.RangeMeters = max
	}

	predicates, err := query.Build(params)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.Query(ctx, predicates)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	return locations, nil
}

// Update normalizes a partial payload and merges only the fields it carries,
// then returns the refreshed location.
func (s *locationService) Update(ctx context.Context, id string, payload map[string]any) (*entity.Location, error) {
	patch, err := normalize.LocationPatch(payload, true)
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		if err := s.locationRepo.Update(ctx, id, patch); err != nil {
			switch {
			case errors.Is(err, repository.ErrLocationNotFound):
				return nil, domainerrors.ErrLocationNotFound.WrapMessage(id)
			case errors.Is(err, repository.ErrDuplicateName):
				return nil, domainerrors.ErrDuplicateLocationName.WrapMessage(id)
			}

			return nil, fmt.Errorf("failed to update location: %w", err)
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a location and its embedded ratings together.
func (s *locationService) Delete(ctx context.Context, id string) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound.WrapMessage(id)
		}

		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

// Rate validates the rating payload and appends it atomically; the store's
// push primitive avoids lost updates under concurrent raters.
func (s *locationService) Rate(ctx context.Context, id string, payload map[string]any) (*entity.Location, error) {
	rating, err := normalize.Rating(payload, true)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.AppendRating(ctx, id, rating); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage(id)
		}

		return nil, fmt.Errorf("failed to append rating: %w", err)
	}

	return s.Get(ctx, id)
}
