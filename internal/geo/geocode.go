// Package geo resolves city names to coordinates for registrations that
// arrive without them.
package geo

import (
	"fmt"

	"github.com/kelvins/geocoder"
)

// Resolver wraps the geocoding backend. The zero value is unusable; use New.
type Resolver struct {
	enabled bool
}

// New configures the geocoder with the given API key. An empty key returns a
// disabled resolver whose lookups always fail.
func New(apiKey string) *Resolver {
	if apiKey == "" {
		return &Resolver{}
	}
	geocoder.ApiKey = apiKey
	return &Resolver{enabled: true}
}

// Resolve returns the coordinates for a city/country pair.
func (r *Resolver) Resolve(city, country string) (lat, lon float64, err error) {
	if r == nil || !r.enabled {
		return 0, 0, fmt.Errorf("geocoding is not configured")
	}

	addr := geocoder.Address{
		City:    city,
		Country: country,
	}
	loc, err := geocoder.Geocoding(addr)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %s: %w", city, err)
	}
	return loc.Latitude, loc.Longitude, nil
}
