package trips

import (
	"context"

	"github.com/viebus/viebus/internal/pkg/models"
)

// TripGW is the slice of the API client the trip search depends on.
type TripGW interface {
	SearchTrips(ctx context.Context, params models.TripSearchParams) ([]models.Trip, error)
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	ListBuses(ctx context.Context) ([]models.BusDetail, error)
	ListAmenities(ctx context.Context) ([]models.BusAmenity, error)
}

// ReviewGW is the slice of the API client serving bus reviews.
type ReviewGW interface {
	ListReviews(ctx context.Context, busID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error)
}

// SearchCache caches trip search results. Implementations must treat cache
// failures as misses; the caller falls back to the API.
type SearchCache interface {
	GetTrips(ctx context.Context, key string) ([]models.Trip, bool)
	SetTrips(ctx context.Context, key string, trips []models.Trip)
}
