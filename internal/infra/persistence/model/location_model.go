// Package model contains the document representations persisted to MongoDB
// and the converters between them and the domain entities.
package model

import (
	"time"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
)

// GeoPointModel is a GeoJSON Point. Coordinates are [longitude, latitude],
// the order MongoDB's 2dsphere index requires.
type GeoPointModel struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// AddressModel is the embedded address document.
type AddressModel struct {
	Address1    string         `bson:"address1"`
	Address2    *string        `bson:"address2,omitempty"`
	City        string         `bson:"city"`
	State       string         `bson:"state"`
	Country     string         `bson:"country"`
	Zipcode     *string        `bson:"zipcode,omitempty"`
	Coordinates *GeoPointModel `bson:"coordinates,omitempty"`
}

// RatingModel is the embedded rating document.
type RatingModel struct {
	Value   int       `bson:"value"`
	User    string    `bson:"user"`
	Comment *string   `bson:"comment,omitempty"`
	RatedOn time.Time `bson:"ratedOn"`
}

// LocationModel is the root location document.
type LocationModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Address      *AddressModel      `bson:"address,omitempty"`
	HQAddress    *AddressModel      `bson:"hqAddress,omitempty"`
	Website      *string            `bson:"website,omitempty"`
	Phone        *string            `bson:"phone,omitempty"`
	Email        *string            `bson:"email,omitempty"`
	Ratings      []RatingModel      `bson:"ratings"`
	LocationType string             `bson:"locationType"`
	Coverages    []string           `bson:"coverages"`
	Services     []string           `bson:"services"`
	Tags         []string           `bson:"tags"`
	Comments     *string            `bson:"comments,omitempty"`
	AddedBy      string             `bson:"addedBy"`
	AddedOn      time.Time          `bson:"addedOn"`
}

// FromLocationDomain converts a domain location into its document form.
func FromLocationDomain(loc *entity.Location) *LocationModel {
	m := &LocationModel{
		Name:         loc.Name,
		Address:      fromAddressDomain(loc.Address),
		HQAddress:    fromAddressDomain(loc.HQAddress),
		Website:      loc.Website,
		Phone:        loc.Phone,
		Email:        loc.Email,
		Ratings:      make([]RatingModel, 0, len(loc.Ratings)),
		LocationType: loc.LocationType,
		Coverages:    make([]string, 0, len(loc.Coverages)),
		Services:     loc.Services,
		Tags:         loc.Tags,
		Comments:     loc.Comments,
		AddedBy:      loc.AddedBy,
		AddedOn:      loc.AddedOn,
	}

	for _, r := range loc.Ratings {
		m.Ratings = append(m.Ratings, *FromRatingDomain(&r))
	}
	for _, c := range loc.Coverages {
		m.Coverages = append(m.Coverages, c.String())
	}

	if id, err := primitive.ObjectIDFromHex(loc.ID); err == nil {
		m.ID = id
	}

	return m
}

// ToLocationDomain converts a document back into the domain entity.
func ToLocationDomain(m *LocationModel) *entity.Location {
	loc := &entity.Location{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Address:      toAddressDomain(m.Address),
		HQAddress:    toAddressDomain(m.HQAddress),
		Website:      m.Website,
		Phone:        m.Phone,
		Email:        m.Email,
		Ratings:      make([]entity.Rating, 0, len(m.Ratings)),
		LocationType: m.LocationType,
		Coverages:    make([]entity.Coverage, 0, len(m.Coverages)),
		Services:     m.Services,
		Tags:         m.Tags,
		Comments:     m.Comments,
		AddedBy:      m.AddedBy,
		AddedOn:      m.AddedOn,
	}

	for _, r := range m.Ratings {
		loc.Ratings = append(loc.Ratings, entity.Rating{
			Value:   r.Value,
			User:    r.User,
			Comment: r.Comment,
			RatedOn: r.RatedOn,
		})
	}
	for _, c := range m.Coverages {
		loc.Coverages = append(loc.Coverages, entity.Coverage(c))
	}

	return loc
}

// FromRatingDomain converts a domain rating into its document form.
func FromRatingDomain(r *entity.Rating) *RatingModel {
	return &RatingModel{
		Value:   r.Value,
		User:    r.User,
		Comment: r.Comment,
		RatedOn: r.RatedOn,
	}
}

// FromAddressDomain converts a domain address into its document form.
func FromAddressDomain(addr *entity.Address) *AddressModel {
	return fromAddressDomain(addr)
}

func fromAddressDomain(addr *entity.Address) *AddressModel {
	if addr == nil {
		return nil
	}

	return &AddressModel{
		Address1: addr.Address1,
		Address2: addr.Address2,
		City:     addr.City,
		State:    addr.State,
		Country:  addr.Country,
		Zipcode:  addr.Zipcode,
		Coordinates: &GeoPointModel{
			Type:        "Point",
			Coordinates: []float64{addr.Coordinates.Lon(), addr.Coordinates.Lat()},
		},
	}
}

func toAddressDomain(m *AddressModel) *entity.Address {
	if m == nil {
		return nil
	}

	addr := &entity.Address{
		Address1: m.Address1,
		Address2: m.Address2,
		City:     m.City,
		State:    m.State,
		Country:  m.Country,
		Zipcode:  m.Zipcode,
	}

	if m.Coordinates != nil && len(m.Coordinates.Coordinates) == 2 {
		addr.Coordinates = orb.Point{m.Coordinates.Coordinates[0], m.Coordinates.Coordinates[1]}
	}

	return addr
}
