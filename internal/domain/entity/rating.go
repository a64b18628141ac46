package entity

import "time"

// Rating is a single user rating embedded in a Location. Ratings are
// append-only: once created they are never edited or removed through the
// public contract.
type Rating struct {
	Value   int       `json:"value"` // 1..5 inclusive
	User    string    `json:"user"`
	Comment *string   `json:"comment"`
	RatedOn time.Time `json:"ratedOn"`
}
