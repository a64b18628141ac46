package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_AverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		want    float64
	}{
		{name: "no ratings", ratings: nil, want: 0},
		{name: "single rating", ratings: []Rating{{Value: 4}}, want: 4},
		{name: "exact mean", ratings: []Rating{{Value: 4}, {Value: 2}}, want: 3},
		{name: "fractional mean", ratings: []Rating{{Value: 5}, {Value: 4}}, want: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := &Location{Ratings: tt.ratings}
			assert.Equal(t, tt.want, loc.AverageRating())
		})
	}
}

func TestLocationPatch_IsEmpty(t *testing.T) {
	assert.True(t, (&LocationPatch{}).IsEmpty())

	phone := "800-555-1234"
	assert.False(t, (&LocationPatch{Phone: &phone}).IsEmpty())

	tags := []string{}
	assert.False(t, (&LocationPatch{Tags: &tags}).IsEmpty())
}
