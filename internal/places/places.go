// Package places talks to the external places directory. The rest of
// the app only sees opaque place identifiers plus whatever details the
// directory reports for them.
package places

import (
	"context"

	"accessmap/internal/selection"
)

// Details is what the directory knows about a single place.
type Details struct {
	PlaceID string   `json:"place_id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	MapsURL string   `json:"url,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// Directory is the lookup surface the handlers depend on.
type Directory interface {
	Details(ctx context.Context, placeID string) (*Details, error)
	Nearby(ctx context.Context, lat, lng float64, radius int) ([]selection.Candidate, error)
}
