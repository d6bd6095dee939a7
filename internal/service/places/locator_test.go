package places

import (
	"context"
	"errors"
	"testing"

	"googlemaps.github.io/maps"
)

type fakeGeoAPI struct {
	geocodeResults []maps.GeocodingResult
	geocodeErr     error
	nearbyResults  []maps.PlacesSearchResult
	nearbyErr      error
	nearbyCalls    int
}

func (f *fakeGeoAPI) Geocode(_ context.Context, _ *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	return f.geocodeResults, f.geocodeErr
}

func (f *fakeGeoAPI) NearbySearch(_ context.Context, _ *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error) {
	f.nearbyCalls++
	return maps.PlacesSearchResponse{Results: f.nearbyResults}, f.nearbyErr
}

func newTestLocator(api geoAPI) *Locator {
	return &Locator{api: api}
}

func geocodeHit() []maps.GeocodingResult {
	return []maps.GeocodingResult{{
		Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 17.38, Lng: 78.48}},
	}}
}

func TestFindNearbyFacilitiesUnresolvedLocation(t *testing.T) {
	api := &fakeGeoAPI{}
	locator := newTestLocator(api)

	got := locator.FindNearbyFacilities(context.Background(), "Springfield")
	if len(got) != 1 || got[0] != "Location not found." {
		t.Fatalf("got %v, want [Location not found.]", got)
	}
	if api.nearbyCalls != 0 {
		t.Fatal("nearby search must not run when geocoding resolves nothing")
	}
}

func TestFindNearbyFacilitiesFormatsResults(t *testing.T) {
	api := &fakeGeoAPI{
		geocodeResults: geocodeHit(),
		nearbyResults: []maps.PlacesSearchResult{
			{Name: "City Hospital", PlaceID: "abc123"},
			{Name: "", PlaceID: "def456"},
			{Name: "Green Clinic", PlaceID: ""},
		},
	}
	locator := newTestLocator(api)

	got := locator.FindNearbyFacilities(context.Background(), "Hyderabad")
	want := []string{
		"City Hospital -- https://www.google.com/maps/place/?q=place_id:abc123",
		"Unknown Hospital -- https://www.google.com/maps/place/?q=place_id:def456",
		"Green Clinic -- Link not available",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindNearbyFacilitiesAbsorbsGeocodeError(t *testing.T) {
	locator := newTestLocator(&fakeGeoAPI{geocodeErr: errors.New("quota exceeded")})

	got := locator.FindNearbyFacilities(context.Background(), "Hyderabad")
	if len(got) != 1 || got[0] != "Error fetching nearby hospitals." {
		t.Fatalf("got %v, want the lookup-failure placeholder", got)
	}
}

func TestFindNearbyFacilitiesAbsorbsSearchError(t *testing.T) {
	locator := newTestLocator(&fakeGeoAPI{
		geocodeResults: geocodeHit(),
		nearbyErr:      errors.New("backend unavailable"),
	})

	got := locator.FindNearbyFacilities(context.Background(), "Hyderabad")
	if len(got) != 1 || got[0] != "Error fetching nearby hospitals." {
		t.Fatalf("got %v, want the lookup-failure placeholder", got)
	}
}
