package entity

import "time"

// Location is the root entity: a veteran-aid provider record. Address and
// Rating values are owned exclusively by their Location and share its
// lifecycle.
type Location struct {
	ID           string     `json:"id"` // store-assigned, hex object id
	Name         string     `json:"name"`
	Address      *Address   `json:"address"`
	HQAddress    *Address   `json:"hqAddress"`
	Website      *string    `json:"website"`
	Phone        *string    `json:"phone"`
	Email        *string    `json:"email"`
	Ratings      []Rating   `json:"ratings"`
	LocationType string     `json:"locationType"`
	Coverages    []Coverage `json:"coverages"`
	Services     []string   `json:"services"` // each capitalized
	Tags         []string   `json:"tags"`     // each trimmed and lower-cased
	Comments     *string    `json:"comments"`
	AddedBy      string     `json:"addedBy"`
	AddedOn      time.Time  `json:"addedOn"`
}

// AverageRating computes the derived rating as the arithmetic mean of the
// embedded rating values. It returns exactly 0 when there are no ratings.
func (l *Location) AverageRating() float64 {
	if len(l.Ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range l.Ratings {
		sum += r.Value
	}

	return float64(sum) / float64(len(l.Ratings))
}

// LocationPatch carries a partial update. Only fields present and well-typed
// in the source payload are set; nil fields are left untouched by the store,
// never nulled.
type LocationPatch struct {
	Name         *string     `json:"name,omitempty"`
	Address      *Address    `json:"address,omitempty"`
	HQAddress    *Address    `json:"hqAddress,omitempty"`
	Website      *string     `json:"website,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	LocationType *string     `json:"locationType,omitempty"`
	Coverages    *[]Coverage `json:"coverages,omitempty"`
	Services     *[]string   `json:"services,omitempty"`
	Tags         *[]string   `json:"tags,omitempty"`
	Comments     *string     `json:"comments,omitempty"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (p *LocationPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.HQAddress == nil &&
		p.Website == nil && p.Phone == nil && p.Email == nil &&
		p.LocationType == nil && p.Coverages == nil && p.Services == nil &&
		p.Tags == nil && p.Comments == nil
}
