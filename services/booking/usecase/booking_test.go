package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viebus/viebus/internal/pkg/models"
)

type fakeBookingGW struct {
	trip     *models.Trip
	tripErr  error
	bookings []models.BookingDetail

	createCalls []models.CreateBookingRequest
	failAtCall  int // 1-based call number that fails, 0 disables
	failErr     error
	nextID      int64
}

func (f *fakeBookingGW) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	f.createCalls = append(f.createCalls, req)
	if f.failAtCall != 0 && len(f.createCalls) == f.failAtCall {
		return nil, f.failErr
	}
	f.nextID++
	return &models.Booking{
		ID:           f.nextID,
		Trip:         req.Trip,
		SeatNumber:   req.SeatNumber,
		PickupPoint:  req.PickupPoint,
		DropoffPoint: req.DropoffPoint,
		Status:       models.BookingStatusPending,
	}, nil
}

func (f *fakeBookingGW) MyBookings(ctx context.Context) ([]models.BookingDetail, error) {
	return f.bookings, nil
}

func (f *fakeBookingGW) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	if f.tripErr != nil {
		return nil, f.tripErr
	}
	return f.trip, nil
}

type fakeAuthorizer struct{ authenticated bool }

func (f fakeAuthorizer) IsAuthenticated() bool { return f.authenticated }

func selectionWithSeats(t *testing.T, gw *fakeBookingGW, seats ...int) *Selection {
	t.Helper()
	uc := NewBookingUC(gw, fakeAuthorizer{authenticated: true})
	sel, err := uc.StartSelection(context.Background(), 42)
	require.NoError(t, err)
	for _, n := range seats {
		require.NoError(t, sel.ToggleSeat(n))
	}
	return sel
}

func TestSubmitCreatesOneBookingPerSeatInOrder(t *testing.T) {
	gw := &fakeBookingGW{trip: testTrip()}
	uc := NewBookingUC(gw, fakeAuthorizer{authenticated: true})

	sel := selectionWithSeats(t, gw, 4, 1, 6)

	created, err := uc.Submit(context.Background(), sel)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, created)

	require.Len(t, gw.createCalls, 3)
	assert.Equal(t, 4, gw.createCalls[0].SeatNumber)
	assert.Equal(t, 1, gw.createCalls[1].SeatNumber)
	assert.Equal(t, 6, gw.createCalls[2].SeatNumber)
	for _, call := range gw.createCalls {
		assert.Equal(t, int64(42), call.Trip)
		assert.Equal(t, int64(10), call.PickupPoint)
		assert.Equal(t, int64(11), call.DropoffPoint)
	}
}

func TestSubmitStopsAtFirstFailure(t *testing.T) {
	upstreamErr := errors.New("seat taken")
	gw := &fakeBookingGW{trip: testTrip(), failAtCall: 2, failErr: upstreamErr}
	uc := NewBookingUC(gw, fakeAuthorizer{authenticated: true})

	sel := selectionWithSeats(t, gw, 1, 2, 4)

	created, err := uc.Submit(context.Background(), sel)
	assert.ErrorIs(t, err, upstreamErr)

	// The first booking stands, the failing seat's successors were never
	// attempted, and nothing was rolled back.
	assert.Equal(t, []int64{1}, created)
	assert.Len(t, gw.createCalls, 2)
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	gw := &fakeBookingGW{trip: testTrip()}
	sel := selectionWithSeats(t, gw, 1)

	uc := NewBookingUC(gw, fakeAuthorizer{authenticated: false})
	created, err := uc.Submit(context.Background(), sel)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, created)
	assert.Len(t, gw.createCalls, 0, "no side effect before the auth check")
}

func TestSubmitRejectsEmptySelection(t *testing.T) {
	gw := &fakeBookingGW{trip: testTrip()}
	uc := NewBookingUC(gw, fakeAuthorizer{authenticated: true})

	sel := selectionWithSeats(t, gw)
	_, err := uc.Submit(context.Background(), sel)
	assert.ErrorIs(t, err, ErrNoSeatsSelected)
	assert.Len(t, gw.createCalls, 0)
}

func TestStartSelectionFetchesFreshTrip(t *testing.T) {
	tripErr := errors.New("trip fetch failed")
	uc := NewBookingUC(&fakeBookingGW{tripErr: tripErr}, fakeAuthorizer{authenticated: true})

	_, err := uc.StartSelection(context.Background(), 42)
	assert.ErrorIs(t, err, tripErr)
}

func TestHistoryRequiresAuthentication(t *testing.T) {
	gw := &fakeBookingGW{bookings: []models.BookingDetail{{ID: 1}}}

	_, err := NewBookingUC(gw, fakeAuthorizer{}).History(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	got, err := NewBookingUC(gw, fakeAuthorizer{authenticated: true}).History(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
