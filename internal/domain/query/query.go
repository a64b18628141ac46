// Package query translates recognized list-filter parameters into an ordered
// chain of store predicates combined by logical AND. The store decides how to
// evaluate each predicate; Matches provides the reference in-memory
// evaluation.
package query

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	domainerrors "github.com/Vets4Warriors/backend/internal/domain/errors"
)

// Op identifies the kind of comparison a predicate performs.
type Op int

const (
	// OpContainsFold matches when the field contains the value,
	// case-insensitively.
	OpContainsFold Op = iota
	// OpIntersects matches when the field's set shares at least one element
	// with the supplied set.
	OpIntersects
	// OpWithinRadius matches when the field's coordinates lie within the
	// radius of the supplied center point.
	OpWithinRadius
)

// Predicate is a single filter condition on a named field.
type Predicate struct {
	Field  string
	Op     Op
	Text   string   // OpContainsFold
	Set    []string // OpIntersects
	Radius *Radius  // OpWithinRadius
}

// Radius is a geo filter: points within Meters of Center match. Center is an
// ordered (longitude, latitude) pair.
type Radius struct {
	Center orb.Point
	Meters float64
}

// Params are the recognized, independently optional filter parameters.
// Anything else in a request is ignored before it reaches here.
type Params struct {
	Name         string
	Website      string
	Phone        string
	Email        string
	LocationType string
	Coverages    []string
	Services     []string
	Tags         []string
	Lat          *float64
	Lng          *float64
	RangeMeters  float64
}

// textParams maps parameters to contains-fold predicates declaratively, in a
// fixed order. Extending the filter surface means adding a row, not a branch.
var textParams = []struct {
	field string
	value func(*Params) string
}{
	{"name", func(p *Params) string { return p.Name }},
	{"website", func(p *Params) string { return p.Website }},
	{"phone", func(p *Params) string { return p.Phone }},
	{"email", func(p *Params) string { return p.Email }},
	{"locationType", func(p *Params) string { return p.LocationType }},
}

var setParams = []struct {
	field string
	value func(*Params) []string
}{
	{"coverages", func(p *Params) []string { return p.Coverages }},
	{"services", func(p *Params) []string { return p.Services }},
	{"tags", func(p *Params) []string { return p.Tags }},
}

// Build produces the ordered predicate chain for the supplied parameters.
// Absent parameters are omitted entirely; no always-true placeholder is ever
// produced. The geo predicate applies only when rangeMeters is positive, and
// then requires lat and lng to be supplied together.
func Build(params Params) ([]Predicate, error) {
	chain := make([]Predicate, 0, len(textParams)+len(setParams)+1)

	for _, p := range textParams {
		if value := p.value(&params); value != "" {
			chain = append(chain, Predicate{Field: p.field, Op: OpContainsFold, Text: value})
		}
	}

	for _, p := range setParams {
		if values := p.value(&params); len(values) > 0 {
			chain = append(chain, Predicate{Field: p.field, Op: OpIntersects, Set: values})
		}
	}

	if params.RangeMeters != 0 {
		if params.RangeMeters < 0 {
			return nil, domainerrors.NewValidationError("rangeMeters", "must not be negative")
		}
		if params.Lat == nil || params.Lng == nil {
			return nil, domainerrors.NewValidationError("rangeMeters", "requires lat and lng")
		}
		chain = append(chain, Predicate{
			Field: "address.coordinates",
			Op:    OpWithinRadius,
			Radius: &Radius{
				Center: orb.Point{*params.Lng, *params.Lat},
				Meters: params.RangeMeters,
			},
		})
	}

	return chain, nil
}

// Matches evaluates the predicate against a location in memory. It is the
// reference semantics for store implementations.
func (p Predicate) Matches(loc *entity.Location) bool {
	switch p.Op {
	case OpContainsFold:
		return containsFold(fieldText(loc, p.Field), p.Text)
	case OpIntersects:
		return intersects(fieldSet(loc, p.Field), p.Set)
	case OpWithinRadius:
		if p.Radius == nil || loc.Address == nil {
			return false
		}

		return geo.DistanceHaversine(loc.Address.Coordinates, p.Radius.Center) <= p.Radius.Meters
	default:
		return false
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func intersects(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}

	return false
}

func fieldText(loc *entity.Location, field string) string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}

		return *s
	}

	switch field {
	case "name":
		return loc.Name
	case "website":
		return deref(loc.Website)
	case "phone":
		return deref(loc.Phone)
	case "email":
		return deref(loc.Email)
	case "locationType":
		return loc.LocationType
	default:
		return ""
	}
}

func fieldSet(loc *entity.Location, field string) []string {
	switch field {
	case "coverages":
		out := make([]string, 0, len(loc.Coverages))
		for _, c := range loc.Coverages {
			out = append(out, c.String())
		}

		return out
	case "services":
		return loc.Services
	case "tags":
		return loc.Tags
	default:
		return nil
	}
}
