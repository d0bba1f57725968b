package ports

import (
	"context"
)

// GeoResult is the resolved locality of a delivery address.
type GeoResult struct {
	// IsLocal reports whether the address is inside the flat-fee zone.
	IsLocal bool

	// DistanceKm is the road distance from the kitchen in kilometres.
	// Zero for local addresses.
	DistanceKm float64
}

// Geocoder resolves a delivery address into a locality and distance.
//
// Implementations call an external service and may fail; callers are
// expected to fall back to a local flat-fee quote and record the fallback
// on the order rather than reject it.
type Geocoder interface {
	Resolve(ctx context.Context, street, city string) (GeoResult, error)
}
