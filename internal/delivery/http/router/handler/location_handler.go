// Package handler contains the echo HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Vets4Warriors/backend/internal/delivery/http/response"
	"github.com/Vets4Warriors/backend/internal/domain/entity"
	domainerrors "github.com/Vets4Warriors/backend/internal/domain/errors"
	"github.com/Vets4Warriors/backend/internal/domain/query"
	"github.com/Vets4Warriors/backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ListLocationsRequest represents the recognized query parameters for listing
// locations. Unrecognized parameters never bind and are silently ignored.
type ListLocationsRequest struct {
	Name         string   `query:"name"`
	Website      string   `query:"website"`
	Phone        string   `query:"phone"`
	Email        string   `query:"email"`
	LocationType string   `query:"locationType"`
	Coverage     []string `query:"coverage"`
	Services     []string `query:"services"`
	Tags         []string `query:"tags"`
	Lat          *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Lng          *float64 `query:"lng" validate:"omitempty,min=-180,max=180"`
	RangeMeters  float64  `query:"rangeMeters" validate:"omitempty,min=0"`
}

// LocationResponse is the serialized location: every stored field plus the
// derived rating.
type LocationResponse struct {
	*entity.Location
	Rating float64 `json:"rating"`
}

// NewLocationResponse builds the response form of a location.
func NewLocationResponse(loc *entity.Location) LocationResponse {
	return LocationResponse{
		Location: loc,
		Rating:   loc.AverageRating(),
	}
}

// List handles querying locations with optional filters
func (h *LocationHandler) List(c echo.Context) error {
	var req ListLocationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	params := query.Params{
		Name:         req.Name,
		Website:      req.Website,
		Phone:        req.Phone,
		Email:        req.Email,
		LocationType: req.LocationType,
		Coverages:    req.Coverage,
		Services:     req.Services,
		Tags:         req.Tags,
		Lat:          req.Lat,
		Lng:          req.Lng,
		RangeMeters:  req.RangeMeters,
	}

	locations, err := h.locationUC.List(c.Request().Context(), params)
	if err != nil {
		return h.handleAppError(c, err)
	}

	out := make([]LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, NewLocationResponse(loc))
	}

	return response.Success(c, http.StatusOK, out, "Locations retrieved successfully")
}

// Create handles adding a new location
func (h *LocationHandler) Create(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.locationUC.Create(c.Request().Context(), payload)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, NewLocationResponse(location), "Location created successfully")
}

// Get handles retrieving a single location by id
func (h *LocationHandler) Get(c echo.Context) error {
	location, err := h.locationUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewLocationResponse(location), "Location retrieved successfully")
}

// Update handles a partial update of a location
func (h *LocationHandler) Update(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.locationUC.Update(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewLocationResponse(location), "Location updated successfully")
}

// Delete handles removing a location together with its ratings
func (h *LocationHandler) Delete(c echo.Context) error {
	if err := h.locationUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Rate handles appending a rating to a location
func (h *LocationHandler) Rate(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	location, err := h.locationUC.Rate(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, NewLocationResponse(location), "Rating recorded successfully")
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
