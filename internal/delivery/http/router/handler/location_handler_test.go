package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vets4Warriors/backend/internal/delivery/http/validator"
	"github.com/Vets4Warriors/backend/internal/domain/entity"
	domainerrors "github.com/Vets4Warriors/backend/internal/domain/errors"
	"github.com/Vets4Warriors/backend/internal/domain/query"
)

// stubUsecase returns canned values; nil function fields panic on use so a
// test only exercises the operations it wires.
type stubUsecase struct {
	create func(ctx context.Context, payload map[string]any) (*entity.Location, error)
	get    func(ctx context.Context, id string) (*entity.Location, error)
	list   func(ctx context.Context, params query.Params) ([]*entity.Location, error)
	update func(ctx context.Context, id string, payload map[string]any) (*entity.Location, error)
	delete func(ctx context.Context, id string) error
	rate   func(ctx context.Context, id string, payload map[string]any) (*entity.Location, error)
}

func (s *stubUsecase) Create(ctx context.Context, payload map[string]any) (*entity.Location, error) {
	return s.create(ctx, payload)
}

func (s *stubUsecase) Get(ctx context.Context, id string) (*entity.Location, error) {
	return s.get(ctx, id)
}

func (s *stubUsecase) List(ctx context.Context, params query.Params) ([]*entity.Location, error) {
	return s.list(ctx, params)
}

func (s *stubUsecase) Update(ctx context.Context, id string, payload map[string]any) (*entity.Location, error) {
	return s.update(ctx, id, payload)
}

func (s *stubUsecase) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func (s *stubUsecase) Rate(ctx context.Context, id string, payload map[string]any) (*entity.Location, error) {
	return s.rate(ctx, id, payload)
}

func newTestHandler(uc *stubUsecase) (*LocationHandler, *echo.Echo) {
	e := echo.New()
	e.Validator = validator.New()

	h := NewLocationHandler(LocationHandlerParams{
		LocationUC: uc,
		Logger:     slog.New(slog.DiscardHandler),
	})

	return h, e
}

func TestGet_SerializesDerivedRating(t *testing.T) {
	uc := &stubUsecase{
		get: func(_ context.Context, id string) (*entity.Location, error) {
			return &entity.Location{
				ID:      id,
				Name:    "Shelter A",
				Ratings: []entity.Rating{{Value: 4, User: "u1"}, {Value: 2, User: "u2"}},
			}, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("id1")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string  `json:"id"`
			Rating float64 `json:"rating"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "id1", body.Data.ID)
	assert.Equal(t, 3.0, body.Data.Rating)
}

func TestGet_NotFoundMapsToEnvelope(t *testing.T) {
	uc := &stubUsecase{
		get: func(_ context.Context, id string) (*entity.Location, error) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage(id)
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "LOCATION_NOT_FOUND", body.Error.Code)
}

func TestCreate_PassesRawPayloadThrough(t *testing.T) {
	var received map[string]any
	uc := &stubUsecase{
		create: func(_ context.Context, payload map[string]any) (*entity.Location, error) {
			received = payload

			return &entity.Location{ID: "id1", Name: "Shelter A"}, nil
		},
	}
	h, e := newTestHandler(uc)

	body := `{"name":"Shelter A","locationType":"Shelter","addedBy":"u1","extra":"ignored"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Shelter A", received["name"])
	assert.Contains(t, received, "extra")
}

func TestCreate_ValidationErrorNamesField(t *testing.T) {
	uc := &stubUsecase{
		create: func(_ context.Context, _ map[string]any) (*entity.Location, error) {
			return nil, domainerrors.NewValidationError("coverages", "unknown coverage value: Galactic")
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string `json:"message"`
		Error   struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "Invalid value for field 'coverages'", body.Message)
	assert.Equal(t, "unknown coverage value: Galactic", body.Error.Details)
}

func TestList_BindsQueryParams(t *testing.T) {
	var received query.Params
	uc := &stubUsecase{
		list: func(_ context.Context, params query.Params) ([]*entity.Location, error) {
			received = params

			return []*entity.Location{}, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/?name=shelter&coverage=Local&coverage=State&tags=medical&lat=40.7&lng=-74.0&rangeMeters=1000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "shelter", received.Name)
	assert.Equal(t, []string{"Local", "State"}, received.Coverages)
	assert.Equal(t, []string{"medical"}, received.Tags)
	require.NotNil(t, received.Lat)
	assert.Equal(t, 40.7, *received.Lat)
	require.NotNil(t, received.Lng)
	assert.Equal(t, -74.0, *received.Lng)
	assert.Equal(t, 1000.0, received.RangeMeters)
}

func TestList_RejectsOutOfRangeLatitude(t *testing.T) {
	h, e := newTestHandler(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/?lat=123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_EmptyResultIsEmptyArray(t *testing.T) {
	uc := &stubUsecase{
		list: func(_ context.Context, _ query.Params) ([]*entity.Location, error) {
			return nil, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestDelete_NoContent(t *testing.T) {
	uc := &stubUsecase{
		delete: func(_ context.Context, id string) error {
			assert.Equal(t, "id1", id)

			return nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("id1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRate_Created(t *testing.T) {
	uc := &stubUsecase{
		rate: func(_ context.Context, id string, payload map[string]any) (*entity.Location, error) {
			assert.Equal(t, "id1", id)
			assert.Equal(t, float64(5), payload["value"])

			return &entity.Location{ID: id, Ratings: []entity.Rating{{Value: 5, User: "u2"}}}, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":5,"user":"u2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("id1")

	require.NoError(t, h.Rate(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":5`)
}
