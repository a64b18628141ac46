// Package normalize converts untyped request payloads into validated,
// canonical domain records. Each normalizer is a pure translation function
// returning a record or a *errors.ValidationError; nothing here touches the
// store.
//
// Two modes exist, mirrored by the validate flag: construct-only builds the
// record applying only basic parsing and coercion, while construct-and-validate
// additionally enforces every declared constraint (requiredness, enum
// membership, value ranges). The latter runs before every persist.
package normalize

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/paulmach/orb"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	domainerrors "github.com/Vets4Warriors/backend/internal/domain/errors"
)

// Location builds a Location from an untyped payload.
//
// String coercion rule: optional string fields with a non-string (or empty)
// value are treated as absent rather than rejected; required string fields
// with a missing or non-string value fail with a ValidationError naming the
// field.
func Location(payload map[string]any, validate bool) (*entity.Location, error) {
	name, err := requiredString(payload, "name")
	if err != nil {
		return nil, err
	}

	addedBy, err := requiredString(payload, "addedBy")
	if err != nil {
		return nil, err
	}

	address, err := optionalAddress(payload, "address", validate)
	if err != nil {
		return nil, err
	}

	hqAddress, err := optionalAddress(payload, "hqAddress", validate)
	if err != nil {
		return nil, err
	}

	rawCoverages, hasCoverages := payload["coverages"]
	if validate && !hasCoverages {
		return nil, domainerrors.NewValidationError("coverages", "required")
	}

	coverages, err := coverageList(rawCoverages, validate)
	if err != nil {
		return nil, err
	}

	locationType := optionalString(payload, "locationType")
	if validate && locationType == nil {
		return nil, domainerrors.NewValidationError("locationType", "required")
	}

	loc := &entity.Location{
		Name:      name,
		Address:   address,
		HQAddress: hqAddress,
		Website:   optionalString(payload, "website"),
		Phone:     optionalString(payload, "phone"),
		Email:     optionalString(payload, "email"),
		Ratings:   []entity.Rating{},
		Coverages: coverages,
		Services:  Services(stringList(payload["services"])),
		Tags:      Tags(stringList(payload["tags"])),
		Comments:  optionalString(payload, "comments"),
		AddedBy:   addedBy,
		AddedOn:   time.Now().UTC(),
	}
	if locationType != nil {
		loc.LocationType = *locationType
	}

	return loc, nil
}

// LocationPatch builds a partial update from an untyped payload. Fields absent
// from the payload (or present with an unusable type) are left nil and will
// not be written; they are never nulled. Fields that are present are
// normalized with the same rules as Location.
func LocationPatch(payload map[string]any, validate bool) (*entity.LocationPatch, error) {
	patch := &entity.LocationPatch{
		Name:         optionalString(payload, "name"),
		Website:      optionalString(payload, "website"),
		Phone:        optionalString(payload, "phone"),
		Email:        optionalString(payload, "email"),
		LocationType: optionalString(payload, "locationType"),
		Comments:     optionalString(payload, "comments"),
	}

	var err error
	if patch.Address, err = optionalAddress(payload, "address", validate); err != nil {
		return nil, err
	}
	if patch.HQAddress, err = optionalAddress(payload, "hqAddress", validate); err != nil {
		return nil, err
	}

	if raw, ok := payload["coverages"].([]any); ok {
		coverages, err := coverageList(raw, validate)
		if err != nil {
			return nil, err
		}
		patch.Coverages = &coverages
	}

	if raw, ok := payload["services"].([]any); ok {
		services := Services(stringList(raw))
		patch.Services = &services
	}

	if raw, ok := payload["tags"].([]any); ok {
		tags := Tags(stringList(raw))
		patch.Tags = &tags
	}

	return patch, nil
}

// Address builds an embedded Address from an untyped payload. The coordinates
// value accepts either the canonical ordered [longitude, latitude] pair or a
// named {lat, lng} object, which is converted to the ordered form.
func Address(payload map[string]any, validate bool) (*entity.Address, error) {
	addr := &entity.Address{
		Address2: optionalString(payload, "address2"),
		Zipcode:  optionalString(payload, "zipcode"),
	}

	for field, dst := range map[string]*string{
		"address1": &addr.Address1,
		"city":     &addr.City,
		"state":    &addr.State,
		"country":  &addr.Country,
	} {
		value := optionalString(payload, field)
		if value == nil {
			if validate {
				return nil, domainerrors.NewValidationError(field, "required")
			}

			continue
		}
		*dst = *value
	}

	raw, ok := payload["coordinates"]
	if !ok || raw == nil {
		if validate {
			return nil, domainerrors.NewValidationError("coordinates", "required")
		}

		return addr, nil
	}

	point, err := Coordinates(raw)
	if err != nil {
		return nil, err
	}
	addr.Coordinates = point

	return addr, nil
}

// Rating builds a Rating from an untyped payload. The value and user fields
// are required in every mode; the 1..5 range is enforced in validate mode.
func Rating(payload map[string]any, validate bool) (*entity.Rating, error) {
	raw, ok := payload["value"]
	if !ok {
		return nil, domainerrors.NewValidationError("value", "required")
	}

	value, ok := asInt(raw)
	if !ok {
		return nil, domainerrors.NewValidationError("value", "must be an integer")
	}

	if validate && (value < 1 || value > 5) {
		return nil, domainerrors.NewValidationError("value", "must be between 1 and 5")
	}

	user, err := requiredString(payload, "user")
	if err != nil {
		return nil, err
	}

	return &entity.Rating{
		Value:   value,
		User:    user,
		Comment: optionalString(payload, "comment"),
		RatedOn: time.Now().UTC(),
	}, nil
}

// Coordinates converts a coordinates value into the canonical ordered
// (longitude, latitude) pair. A named {lat, lng} object is converted; an
// ordered two-element pair passes through unchanged.
func Coordinates(raw any) (orb.Point, error) {
	switch v := raw.(type) {
	case map[string]any:
		lat, latOK := asFloat(v["lat"])
		lng, lngOK := asFloat(v["lng"])
		if !latOK || !lngOK {
			return orb.Point{}, domainerrors.NewValidationError("coordinates", "lat and lng must be numbers")
		}

		return orb.Point{lng, lat}, nil
	case []any:
		if len(v) != 2 {
			return orb.Point{}, domainerrors.NewValidationError("coordinates", "must be a [longitude, latitude] pair")
		}
		lng, lngOK := asFloat(v[0])
		lat, latOK := asFloat(v[1])
		if !lngOK || !latOK {
			return orb.Point{}, domainerrors.NewValidationError("coordinates", "must be a pair of numbers")
		}

		return orb.Point{lng, lat}, nil
	default:
		return orb.Point{}, domainerrors.NewValidationError("coordinates", "must be a pair or a {lat, lng} object")
	}
}

// Tags canonicalizes tag strings: surrounding whitespace is trimmed and the
// result lower-cased. The operation is idempotent.
func Tags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.ToLower(strings.TrimSpace(tag)))
	}

	return out
}

// Services canonicalizes service strings: trimmed, first letter upper-cased,
// the rest lower-cased.
func Services(services []string) []string {
	out := make([]string, 0, len(services))
	for _, service := range services {
		out = append(out, capitalize(strings.TrimSpace(service)))
	}

	return out
}

// capitalize upper-cases the first rune and lower-cases the remainder.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// coverageList converts a payload value into coverage values. In validate
// mode the value must be a list of known coverage strings; construct-only
// mode keeps what parses and drops the rest.
func coverageList(raw any, validate bool) ([]entity.Coverage, error) {
	coverages := []entity.Coverage{}
	items, ok := raw.([]any)
	if !ok {
		if validate {
			return nil, domainerrors.NewValidationError("coverages", "must be a list of coverage values")
		}

		return coverages, nil
	}

	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			if validate {
				return nil, domainerrors.NewValidationError("coverages", "must be a list of coverage values")
			}

			continue
		}
		coverage := entity.Coverage(s)
		if validate && !coverage.IsValid() {
			return nil, domainerrors.NewValidationError("coverages", "unknown coverage value: "+s)
		}
		coverages = append(coverages, coverage)
	}

	return coverages, nil
}

// stringList extracts the string elements of a list payload value, skipping
// anything that is not a string.
func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

func optionalString(payload map[string]any, field string) *string {
	raw, ok := payload[field]
	if !ok {
		return nil
	}

	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}

	return &s
}

func requiredString(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field]
	if !ok {
		return "", domainerrors.NewValidationError(field, "required")
	}

	s, ok := raw.(string)
	if !ok || s == "" {
		return "", domainerrors.NewValidationError(field, "must be a non-empty string")
	}

	return s, nil
}

func optionalAddress(payload map[string]any, field string, validate bool) (*entity.Address, error) {
	raw, ok := payload[field]
	if !ok || raw == nil {
		return nil, nil
	}

	nested, ok := raw.(map[string]any)
	if !ok {
		return nil, domainerrors.NewValidationError(field, "must be an address object")
	}

	addr, err := Address(nested, validate)
	if err != nil {
		return nil, err
	}

	return addr, nil
}

// asFloat accepts the numeric types a JSON decoder or query parser can
// produce.
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// asInt accepts integral values only; JSON numbers arrive as float64 and are
// accepted when they carry no fractional part.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}

		return int(v), true
	default:
		return 0, false
	}
}
