// Package usecase serves trip, route and fleet lookups, with an optional
// short-lived cache in front of the public search.
package usecase

import (
	"context"
	"fmt"

	"github.com/viebus/viebus/internal/pkg/constants"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/services/trips"
)

// TripUC answers the search and catalog reads backing the public pages.
type TripUC struct {
	gw      trips.TripGW
	reviews trips.ReviewGW
	cache   trips.SearchCache // nil disables caching
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(gw trips.TripGW, reviews trips.ReviewGW, cache trips.SearchCache) *TripUC {
	return &TripUC{gw: gw, reviews: reviews, cache: cache}
}

// Search lists trips matching the filters, consulting the cache first.
func (uc *TripUC) Search(ctx context.Context, params models.TripSearchParams) ([]models.Trip, error) {
	key := searchKey(params)

	if uc.cache != nil {
		if cached, ok := uc.cache.GetTrips(ctx, key); ok {
			return cached, nil
		}
	}

	found, err := uc.gw.SearchTrips(ctx, params)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetTrips(ctx, key, found)
	}
	return found, nil
}

// GetTrip always hits the API: a booking flow needs the freshest seat map
// it can get, even though booked flags may still be stale by submission.
func (uc *TripUC) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	return uc.gw.GetTrip(ctx, id)
}

// ListRoutes lists all routes.
func (uc *TripUC) ListRoutes(ctx context.Context) ([]models.Route, error) {
	return uc.gw.ListRoutes(ctx)
}

// ListBuses lists the fleet.
func (uc *TripUC) ListBuses(ctx context.Context) ([]models.BusDetail, error) {
	return uc.gw.ListBuses(ctx)
}

// ListAmenities lists amenity definitions.
func (uc *TripUC) ListAmenities(ctx context.Context) ([]models.BusAmenity, error) {
	return uc.gw.ListAmenities(ctx)
}

// ListReviews lists reviews for one bus, or all reviews when busID is zero.
func (uc *TripUC) ListReviews(ctx context.Context, busID int64) ([]models.Review, error) {
	return uc.reviews.ListReviews(ctx, busID)
}

// CreateReview posts a review against a completed booking.
func (uc *TripUC) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	return uc.reviews.CreateReview(ctx, req)
}

func searchKey(params models.TripSearchParams) string {
	return fmt.Sprintf("%s:%s|%s|%s",
		constants.CacheKeyTripSearch, params.Origin, params.Destination, params.Date)
}
