package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viebus/viebus/internal/pkg/models"
)

type fakeTripGW struct {
	trips       []models.Trip
	trip        *models.Trip
	searchCalls int
	getCalls    int
}

func (f *fakeTripGW) SearchTrips(ctx context.Context, params models.TripSearchParams) ([]models.Trip, error) {
	f.searchCalls++
	return f.trips, nil
}

func (f *fakeTripGW) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	f.getCalls++
	return f.trip, nil
}

func (f *fakeTripGW) ListRoutes(ctx context.Context) ([]models.Route, error)     { return nil, nil }
func (f *fakeTripGW) ListBuses(ctx context.Context) ([]models.BusDetail, error)  { return nil, nil }
func (f *fakeTripGW) ListAmenities(ctx context.Context) ([]models.BusAmenity, error) {
	return nil, nil
}

type fakeReviewGW struct{}

func (fakeReviewGW) ListReviews(ctx context.Context, busID int64) ([]models.Review, error) {
	return nil, nil
}
func (fakeReviewGW) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	return nil, nil
}

type fakeSearchCache struct {
	entries map[string][]models.Trip
	gets    []string
	sets    []string
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: make(map[string][]models.Trip)}
}

func (f *fakeSearchCache) GetTrips(ctx context.Context, key string) ([]models.Trip, bool) {
	f.gets = append(f.gets, key)
	trips, ok := f.entries[key]
	return trips, ok
}

func (f *fakeSearchCache) SetTrips(ctx context.Context, key string, trips []models.Trip) {
	f.sets = append(f.sets, key)
	f.entries[key] = trips
}

func TestSearchPopulatesAndHitsCache(t *testing.T) {
	gw := &fakeTripGW{trips: []models.Trip{{ID: 1}, {ID: 2}}}
	cache := newFakeSearchCache()
	uc := NewTripUC(gw, fakeReviewGW{}, cache)

	params := models.TripSearchParams{Origin: "Hà Nội", Destination: "Hải Phòng", Date: "2026-09-01"}

	first, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, gw.searchCalls)
	require.Len(t, cache.sets, 1)

	second, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gw.searchCalls, "second search served from cache")
}

func TestSearchKeyVariesWithFilters(t *testing.T) {
	gw := &fakeTripGW{}
	cache := newFakeSearchCache()
	uc := NewTripUC(gw, fakeReviewGW{}, cache)

	_, err := uc.Search(context.Background(), models.TripSearchParams{Origin: "A", Destination: "B"})
	require.NoError(t, err)
	_, err = uc.Search(context.Background(), models.TripSearchParams{Origin: "A", Destination: "C"})
	require.NoError(t, err)

	require.Len(t, cache.gets, 2)
	assert.NotEqual(t, cache.gets[0], cache.gets[1])
	assert.Equal(t, 2, gw.searchCalls)
}

func TestSearchWorksWithoutCache(t *testing.T) {
	gw := &fakeTripGW{trips: []models.Trip{{ID: 1}}}
	uc := NewTripUC(gw, fakeReviewGW{}, nil)

	for i := 0; i < 2; i++ {
		trips, err := uc.Search(context.Background(), models.TripSearchParams{})
		require.NoError(t, err)
		assert.Len(t, trips, 1)
	}
	assert.Equal(t, 2, gw.searchCalls)
}

func TestGetTripBypassesCache(t *testing.T) {
	gw := &fakeTripGW{trip: &models.Trip{ID: 42, SeatMap: []models.SeatInfo{{Number: 1}}}}
	cache := newFakeSearchCache()
	uc := NewTripUC(gw, fakeReviewGW{}, cache)

	for i := 0; i < 3; i++ {
		trip, err := uc.GetTrip(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), trip.ID)
	}

	assert.Equal(t, 3, gw.getCalls, "seat maps must always be fetched fresh")
	assert.Empty(t, cache.gets)
	assert.Empty(t, cache.sets)
}
