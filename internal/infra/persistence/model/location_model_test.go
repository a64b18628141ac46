package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
)

func TestFromLocationDomain_GeoJSONOrder(t *testing.T) {
	loc := &entity.Location{
		Name: "Shelter A",
		Address: &entity.Address{
			Address1:    "1 Main St",
			City:        "Newark",
			State:       "NJ",
			Country:     "USA",
			Coordinates: orb.Point{-74.0, 40.7},
		},
		Coverages: []entity.Coverage{entity.CoverageLocal},
		AddedBy:   "u1",
	}

	m := FromLocationDomain(loc)

	require.NotNil(t, m.Address)
	require.NotNil(t, m.Address.Coordinates)
	assert.Equal(t, "Point", m.Address.Coordinates.Type)
	// longitude first, the order the 2dsphere index expects
	assert.Equal(t, []float64{-74.0, 40.7}, m.Address.Coordinates.Coordinates)
	assert.Equal(t, []string{"Local"}, m.Coverages)
	assert.Nil(t, m.HQAddress)
	assert.True(t, m.ID.IsZero())
}

func TestFromLocationDomain_CarriesExistingID(t *testing.T) {
	id := primitive.NewObjectID()
	m := FromLocationDomain(&entity.Location{ID: id.Hex(), Name: "Shelter A"})
	assert.Equal(t, id, m.ID)
}

func TestToLocationDomain(t *testing.T) {
	id := primitive.NewObjectID()
	m := &LocationModel{
		ID:   id,
		Name: "Shelter A",
		Address: &AddressModel{
			Address1: "1 Main St",
			City:     "Newark",
			State:    "NJ",
			Country:  "USA",
			Coordinates: &GeoPointModel{
				Type:        "Point",
				Coordinates: []float64{-74.0, 40.7},
			},
		},
		Ratings:   []RatingModel{{Value: 4, User: "u2"}},
		Coverages: []string{"Local"},
	}

	loc := ToLocationDomain(m)

	assert.Equal(t, id.Hex(), loc.ID)
	require.NotNil(t, loc.Address)
	assert.Equal(t, orb.Point{-74.0, 40.7}, loc.Address.Coordinates)
	assert.Equal(t, []entity.Coverage{entity.CoverageLocal}, loc.Coverages)
	require.Len(t, loc.Ratings, 1)
	assert.Equal(t, 4, loc.Ratings[0].Value)
	assert.Equal(t, 4.0, loc.AverageRating())
}
