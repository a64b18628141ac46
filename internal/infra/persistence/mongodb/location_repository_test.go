package mongodb

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	"github.com/Vets4Warriors/backend/internal/infra/persistence/model"
)

func TestPatchToSet_Empty(t *testing.T) {
	assert.Empty(t, patchToSet(&entity.LocationPatch{}))
}

func TestPatchToSet_OnlyPresentFields(t *testing.T) {
	phone := "800-555-1234"
	coverages := []entity.Coverage{entity.CoverageLocal, entity.CoverageState}
	tags := []string{"medical"}

	set := patchToSet(&entity.LocationPatch{
		Phone:     &phone,
		Coverages: &coverages,
		Tags:      &tags,
	})

	assert.Equal(t, bson.M{
		"phone":     "800-555-1234",
		"coverages": []string{"Local", "State"},
		"tags":      []string{"medical"},
	}, set)
}

func TestPatchToSet_AddressBecomesGeoJSON(t *testing.T) {
	set := patchToSet(&entity.LocationPatch{
		Address: &entity.Address{
			Address1:    "1 Main St",
			City:        "Newark",
			State:       "NJ",
			Country:     "USA",
			Coordinates: orb.Point{-74.0, 40.7},
		},
	})

	addr, ok := set["address"].(*model.AddressModel)
	require.True(t, ok)
	require.NotNil(t, addr.Coordinates)
	assert.Equal(t, "Point", addr.Coordinates.Type)
	assert.Equal(t, []float64{-74.0, 40.7}, addr.Coordinates.Coordinates)
}
