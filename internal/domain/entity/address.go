package entity

import (
	"github.com/paulmach/orb"
)

// Address is an embedded value object describing a physical location.
// It has no identity of its own and lives entirely inside its Location.
//
// Coordinates are always held as an ordered (longitude, latitude) pair,
// matching the GeoJSON convention used by the store. orb.Point encodes that
// ordering in the type: index 0 is longitude, index 1 is latitude.
type Address struct {
	Address1    string    `json:"address1"`
	Address2    *string   `json:"address2"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Zipcode     *string   `json:"zipcode"`
	Coordinates orb.Point `json:"coordinates"`
}
