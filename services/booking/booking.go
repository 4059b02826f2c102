package booking

import (
	"context"

	"github.com/viebus/viebus/internal/pkg/models"
)

// BookingGW is the slice of the API client the booking engine depends on.
type BookingGW interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	MyBookings(ctx context.Context) ([]models.BookingDetail, error)
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)
}

// Authorizer reports whether a user session is established. Submission is
// refused without one.
type Authorizer interface {
	IsAuthenticated() bool
}
