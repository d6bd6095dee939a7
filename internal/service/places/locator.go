// Package places wraps the geocoding + nearby-search collaborator into a
// single facility lookup. Failures never propagate to the caller; they
// degrade to an informative display string.
package places

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"googlemaps.github.io/maps"

	"github.com/careline/medichat/internal/config"
)

// searchRadius is the fixed nearby-search radius in meters.
const searchRadius = 3000

// Placeholder strings surfaced to the user instead of errors.
const (
	msgLocationNotFound = "Location not found."
	msgLookupFailed     = "Error fetching nearby hospitals."
	unknownFacilityName = "Unknown Hospital"
	linkUnavailable     = "Link not available"
)

// geoAPI is the slice of the maps client the locator needs; *maps.Client
// satisfies it.
type geoAPI interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// Locator resolves a free-text location to nearby hospital display strings.
type Locator struct {
	api     geoAPI
	timeout time.Duration
}

// NewLocator builds a Google-Maps-backed locator from the configuration.
func NewLocator(cfg config.MapsConfig) (*Locator, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("maps credentials missing: set MAPS_API_KEY")
	}

	client, err := maps.NewClient(
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Locator{api: client, timeout: cfg.Timeout}, nil
}

// FindNearbyFacilities geocodes locationText and lists hospitals within the
// fixed radius as "<name> -- <map link>" strings. An unresolvable location
// or any service failure yields a single-element placeholder slice.
func (l *Locator) FindNearbyFacilities(ctx context.Context, locationText string) []string {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	geocoded, err := l.api.Geocode(ctx, &maps.GeocodingRequest{Address: locationText})
	if err != nil {
		log.Printf("[places] geocode failed for %q: %v", locationText, err)
		return []string{msgLookupFailed}
	}
	if len(geocoded) == 0 {
		return []string{msgLocationNotFound}
	}

	coordinates := geocoded[0].Geometry.Location
	nearby, err := l.api.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &coordinates,
		Radius:   searchRadius,
		Type:     maps.PlaceTypeHospital,
	})
	if err != nil {
		log.Printf("[places] nearby search failed for %q: %v", locationText, err)
		return []string{msgLookupFailed}
	}

	facilities := make([]string, 0, len(nearby.Results))
	for _, place := range nearby.Results {
		facilities = append(facilities, displayString(place.Name, place.PlaceID))
	}
	return facilities
}

func displayString(name, placeID string) string {
	if name == "" {
		name = unknownFacilityName
	}
	if placeID == "" {
		return name + " -- " + linkUnavailable
	}
	return fmt.Sprintf("%s -- https://www.google.com/maps/place/?q=place_id:%s", name, placeID)
}
