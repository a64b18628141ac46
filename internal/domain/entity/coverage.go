// Package entity contains the core business objects of the project.
package entity

// Coverage represents the geographic reach of an aid provider.
type Coverage string

const (
	// CoverageInternational indicates the provider serves internationally.
	CoverageInternational Coverage = "International"
	// CoverageNational indicates the provider serves the whole country.
	CoverageNational Coverage = "National"
	// CoverageRegional indicates the provider serves a multi-state region.
	CoverageRegional Coverage = "Regional"
	// CoverageState indicates the provider serves a single state.
	CoverageState Coverage = "State"
	// CoverageLocal indicates the provider serves a local community.
	CoverageLocal Coverage = "Local"
)

// String returns the string representation of the Coverage.
func (c Coverage) String() string {
	return string(c)
}

// IsValid checks if the Coverage is a valid value.
func (c Coverage) IsValid() bool {
	switch c {
	case CoverageInternational, CoverageNational, CoverageRegional, CoverageState, CoverageLocal:
		return true
	default:
		return false
	}
}
