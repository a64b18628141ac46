package normalize

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	domainerrors "github.com/Vets4Warriors/backend/internal/domain/errors"
)

func validLocationPayload() map[string]any {
	return map[string]any{
		"name":         "Shelter A",
		"locationType": "Shelter",
		"coverages":    []any{"Local"},
		"services":     []any{"housing"},
		"tags":         []any{" Vets "},
		"addedBy":      "u1",
	}
}

func TestLocation_OptionalFieldsAbsent(t *testing.T) {
	loc, err := Location(validLocationPayload(), true)
	require.NoError(t, err)

	assert.Nil(t, loc.HQAddress)
	assert.Nil(t, loc.Address)
	assert.Nil(t, loc.Phone)
	assert.Nil(t, loc.Email)
	assert.Nil(t, loc.Website)
	assert.Nil(t, loc.Comments)
	assert.Equal(t, "Shelter A", loc.Name)
	assert.Equal(t, "u1", loc.AddedBy)
	assert.False(t, loc.AddedOn.IsZero())
}

func TestLocation_NormalizesServicesAndTags(t *testing.T) {
	payload := validLocationPayload()
	payload["services"] = []any{"housing", "LEGAL AID"}
	payload["tags"] = []any{" Medical ", "LEGAL"}

	loc, err := Location(payload, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"Housing", "Legal aid"}, loc.Services)
	assert.Equal(t, []string{"medical", "legal"}, loc.Tags)
}

func TestLocation_NonStringListElementsSkipped(t *testing.T) {
	payload := validLocationPayload()
	payload["tags"] = []any{"ok", 42, nil}
	payload["services"] = []any{true, "counseling"}

	loc, err := Location(payload, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"ok"}, loc.Tags)
	assert.Equal(t, []string{"Counseling"}, loc.Services)
}

func TestLocation_WrongTypedOptionalFieldTreatedAsAbsent(t *testing.T) {
	payload := validLocationPayload()
	payload["phone"] = 8005551234
	payload["website"] = false

	loc, err := Location(payload, true)
	require.NoError(t, err)

	assert.Nil(t, loc.Phone)
	assert.Nil(t, loc.Website)
}

func TestLocation_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any // nil means delete
	}{
		{name: "name missing", field: "name"},
		{name: "name wrong type", field: "name", value: 7},
		{name: "addedBy missing", field: "addedBy"},
		{name: "addedBy wrong type", field: "addedBy", value: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validLocationPayload()
			if tt.value == nil {
				delete(payload, tt.field)
			} else {
				payload[tt.field] = tt.value
			}

			_, err := Location(payload, true)
			var vErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field())
		})
	}
}

func TestLocation_MissingLocationTypeOnlyFailsInValidateMode(t *testing.T) {
	payload := validLocationPayload()
	delete(payload, "locationType")

	_, err := Location(payload, true)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "locationType", vErr.Field())

	loc, err := Location(payload, false)
	require.NoError(t, err)
	assert.Empty(t, loc.LocationType)
}

func TestLocation_CoveragesRequired(t *testing.T) {
	tests := []struct {
		name  string
		value any // nil means delete
	}{
		{name: "missing"},
		{name: "scalar instead of list", value: "Local"},
		{name: "non-string element", value: []any{"Local", 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validLocationPayload()
			if tt.value == nil {
				delete(payload, "coverages")
			} else {
				payload["coverages"] = tt.value
			}

			_, err := Location(payload, true)
			var vErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "coverages", vErr.Field())
		})
	}
}

func TestLocation_CoveragesLenientWhenNotValidating(t *testing.T) {
	payload := validLocationPayload()
	delete(payload, "coverages")

	loc, err := Location(payload, false)
	require.NoError(t, err)
	assert.Empty(t, loc.Coverages)

	payload["coverages"] = []any{"Local", 42}
	loc, err = Location(payload, false)
	require.NoError(t, err)
	assert.Equal(t, []entity.Coverage{entity.CoverageLocal}, loc.Coverages)
}

func TestLocation_RejectsUnknownCoverage(t *testing.T) {
	payload := validLocationPayload()
	payload["coverages"] = []any{"Local", "Galactic"}

	_, err := Location(payload, true)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "coverages", vErr.Field())
}

func TestLocation_RejectsEmptyStringCoverage(t *testing.T) {
	payload := validLocationPayload()
	payload["coverages"] = []any{""}

	_, err := Location(payload, true)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "coverages", vErr.Field())
}

func TestLocation_NestedAddressNormalized(t *testing.T) {
	payload := validLocationPayload()
	payload["address"] = map[string]any{
		"address1":    "1 Main St",
		"city":        "Newark",
		"state":       "NJ",
		"country":     "USA",
		"zipcode":     "07102",
		"coordinates": map[string]any{"lat": 40.7, "lng": -74.0},
	}

	loc, err := Location(payload, true)
	require.NoError(t, err)
	require.NotNil(t, loc.Address)
	assert.Equal(t, orb.Point{-74.0, 40.7}, loc.Address.Coordinates)
	assert.Nil(t, loc.HQAddress)
}

func TestCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    orb.Point
		wantErr bool
	}{
		{
			name: "named object converted to ordered pair",
			raw:  map[string]any{"lat": 40.7, "lng": -74.0},
			want: orb.Point{-74.0, 40.7},
		},
		{
			name: "ordered pair passes through unchanged",
			raw:  []any{-74.0, 40.7},
			want: orb.Point{-74.0, 40.7},
		},
		{
			name: "integer values accepted",
			raw:  []any{-74, 40},
			want: orb.Point{-74, 40},
		},
		{
			name:    "wrong length pair rejected",
			raw:     []any{-74.0},
			wantErr: true,
		},
		{
			name:    "named object with missing lng rejected",
			raw:     map[string]any{"lat": 40.7},
			wantErr: true,
		},
		{
			name:    "scalar rejected",
			raw:     "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := Coordinates(tt.raw)
			if tt.wantErr {
				var vErr *domainerrors.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "coordinates", vErr.Field())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, point)
		})
	}
}

func TestAddress_RequiredFieldsOnlyEnforcedInValidateMode(t *testing.T) {
	payload := map[string]any{"city": "Newark"}

	_, err := Address(payload, true)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	addr, err := Address(payload, false)
	require.NoError(t, err)
	assert.Equal(t, "Newark", addr.City)
}

func TestTags_Idempotent(t *testing.T) {
	input := []string{" Medical ", "LEGAL"}
	once := Tags(input)
	assert.Equal(t, []string{"medical", "legal"}, once)
	assert.Equal(t, once, Tags(once))
}

func TestServices_Capitalization(t *testing.T) {
	assert.Equal(t, []string{"Housing", "Legal aid"}, Services([]string{"housing", "LEGAL AID"}))
	assert.Equal(t, []string{""}, Services([]string{" "}))
}

func TestRating(t *testing.T) {
	rating, err := Rating(map[string]any{"value": float64(4), "user": "u2"}, true)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Value)
	assert.Equal(t, "u2", rating.User)
	assert.Nil(t, rating.Comment)
	assert.False(t, rating.RatedOn.IsZero())
}

func TestRating_RangeEnforcedInValidateMode(t *testing.T) {
	for _, value := range []float64{0, 6, -1} {
		_, err := Rating(map[string]any{"value": value, "user": "u2"}, true)
		var vErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "value", vErr.Field())
	}

	rating, err := Rating(map[string]any{"value": float64(6), "user": "u2"}, false)
	require.NoError(t, err)
	assert.Equal(t, 6, rating.Value)
}

func TestRating_RejectsFractionalAndMissingValue(t *testing.T) {
	_, err := Rating(map[string]any{"value": 3.5, "user": "u2"}, true)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = Rating(map[string]any{"user": "u2"}, true)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "value", vErr.Field())
}

func TestLocationPatch_OnlyPresentFieldsSet(t *testing.T) {
	patch, err := LocationPatch(map[string]any{
		"phone": "800-555-1234",
		"tags":  []any{" NEW "},
	}, true)
	require.NoError(t, err)

	require.NotNil(t, patch.Phone)
	assert.Equal(t, "800-555-1234", *patch.Phone)
	require.NotNil(t, patch.Tags)
	assert.Equal(t, []string{"new"}, *patch.Tags)

	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Address)
	assert.Nil(t, patch.Coverages)
	assert.Nil(t, patch.Services)
	assert.False(t, patch.IsEmpty())
}

func TestLocationPatch_EmptyPayload(t *testing.T) {
	patch, err := LocationPatch(map[string]any{}, true)
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())
}

func TestLocationPatch_WrongTypedListsLeftUntouched(t *testing.T) {
	// A wrong-typed list field must be skipped, never written as empty.
	patch, err := LocationPatch(map[string]any{
		"tags":      42,
		"services":  "Housing",
		"coverages": true,
	}, true)
	require.NoError(t, err)

	assert.Nil(t, patch.Tags)
	assert.Nil(t, patch.Services)
	assert.Nil(t, patch.Coverages)
	assert.True(t, patch.IsEmpty())
}

func TestLocationPatch_InvalidCoverageRejected(t *testing.T) {
	_, err := LocationPatch(map[string]any{"coverages": []any{"Cosmic"}}, true)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "coverages", vErr.Field())
}

func TestCoverageValues(t *testing.T) {
	for _, c := range []entity.Coverage{
		entity.CoverageInternational,
		entity.CoverageNational,
		entity.CoverageRegional,
		entity.CoverageState,
		entity.CoverageLocal,
	} {
		assert.True(t, c.IsValid())
	}
	assert.False(t, entity.Coverage("Galactic").IsValid())
}
