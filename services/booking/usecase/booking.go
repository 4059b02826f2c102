package usecase

import (
	"context"
	"errors"

	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/services/booking"
)

var (
	// ErrNotAuthenticated aborts submission before any side effect; the
	// caller redirects to login.
	ErrNotAuthenticated = errors.New("login required to book")
	// ErrNoSeatsSelected reports an empty selection without calling the API.
	ErrNoSeatsSelected = errors.New("no seats selected")
)

// BookingUC submits selections and reads booking history.
type BookingUC struct {
	gw      booking.BookingGW
	session booking.Authorizer
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(gw booking.BookingGW, session booking.Authorizer) *BookingUC {
	return &BookingUC{gw: gw, session: session}
}

// Submit creates one booking per selected seat, sequentially and in
// selection order. On the first failure it stops: seats after the failing
// one are never attempted and bookings already created are not rolled back —
// they remain server-side records the user resolves via payment or
// cancellation. The ids created before the failure are returned with the
// error so the caller can still hand them to payment.
func (uc *BookingUC) Submit(ctx context.Context, sel *Selection) ([]int64, error) {
	if !uc.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	seats := sel.SelectedSeats()
	if len(seats) == 0 {
		return nil, ErrNoSeatsSelected
	}

	pickup := sel.PickupPoint()
	dropoff := sel.DropoffPoint()

	created := make([]int64, 0, len(seats))
	for _, seat := range seats {
		b, err := uc.gw.CreateBooking(ctx, models.CreateBookingRequest{
			Trip:         sel.Trip().ID,
			SeatNumber:   seat,
			PickupPoint:  pickup.ID,
			DropoffPoint: dropoff.ID,
		})
		if err != nil {
			logger.Warn("booking batch aborted",
				logger.Int64("trip_id", sel.Trip().ID),
				logger.Int("seat", seat),
				logger.Int("created", len(created)),
				logger.Err(err))
			return created, err
		}
		created = append(created, b.ID)
	}

	logger.Info("booking batch created",
		logger.Int64("trip_id", sel.Trip().ID),
		logger.Int64s("booking_ids", created))
	return created, nil
}

// History lists the caller's bookings.
func (uc *BookingUC) History(ctx context.Context) ([]models.BookingDetail, error) {
	if !uc.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return uc.gw.MyBookings(ctx)
}

// StartSelection fetches a fresh trip (seat maps are never cached) and
// opens a selection on it.
func (uc *BookingUC) StartSelection(ctx context.Context, tripID int64) (*Selection, error) {
	trip, err := uc.gw.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return NewSelection(trip)
}
