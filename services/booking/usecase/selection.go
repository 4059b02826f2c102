// Package usecase implements the seat-selection engine: seat toggling with
// the selection cap, pickup/dropoff choice and the price computation, plus
// sequential multi-seat submission.
package usecase

import (
	"errors"
	"fmt"

	"github.com/viebus/viebus/internal/pkg/models"
)

// MaxSelectedSeats caps how many seats one booking flow may hold.
const MaxSelectedSeats = 5

var (
	// ErrMaxSeats rejects a toggle that would exceed MaxSelectedSeats.
	// The selection is left unchanged; the caller surfaces the limit.
	ErrMaxSeats = fmt.Errorf("at most %d seats may be selected", MaxSelectedSeats)
	// ErrUnknownSeat rejects a seat number not present in the seat map.
	ErrUnknownSeat = errors.New("seat not in seat map")
	// ErrRouteNotBookable means the route lacks a pickup- or
	// dropoff-capable point, so no booking can be made on it.
	ErrRouteNotBookable = errors.New("route has no pickup or dropoff point")
	// ErrInvalidPoint rejects a pickup/dropoff choice that is not a route
	// point of a compatible type.
	ErrInvalidPoint = errors.New("point is not valid for this selection")
)

// Selection is the seat-selection state for one trip: an ordered set of
// seat numbers plus a pickup and a dropoff point. It is driven by a single
// UI flow and is not safe for concurrent use.
type Selection struct {
	trip      *models.Trip
	seats     []int
	pickupID  int64
	dropoffID int64
}

// NewSelection starts a selection on a trip. The pickup and dropoff default
// to the first capable point in route order; a route without at least one of
// each is not bookable.
func NewSelection(trip *models.Trip) (*Selection, error) {
	sel := &Selection{trip: trip}

	for _, p := range trip.Route.Points {
		if sel.pickupID == 0 && p.PointType.Pickup() {
			sel.pickupID = p.ID
		}
		if sel.dropoffID == 0 && p.PointType.Dropoff() {
			sel.dropoffID = p.ID
		}
	}
	if sel.pickupID == 0 || sel.dropoffID == 0 {
		return nil, ErrRouteNotBookable
	}

	return sel, nil
}

// ToggleSeat selects or deselects a seat. Deselection preserves the order
// of the remaining seats. Toggling a seat marked booked in the fetched seat
// map is a no-op: the server is the source of truth and will reject a stale
// conflict at submission anyway. Exceeding the cap returns ErrMaxSeats with
// the state unchanged.
func (s *Selection) ToggleSeat(seatNumber int) error {
	for i, n := range s.seats {
		if n == seatNumber {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return nil
		}
	}

	seat := s.seatInfo(seatNumber)
	if seat == nil {
		return ErrUnknownSeat
	}
	if seat.IsBooked {
		return nil
	}
	if len(s.seats) >= MaxSelectedSeats {
		return ErrMaxSeats
	}

	s.seats = append(s.seats, seatNumber)
	return nil
}

func (s *Selection) seatInfo(seatNumber int) *models.SeatInfo {
	for i := range s.trip.SeatMap {
		if s.trip.SeatMap[i].Number == seatNumber {
			return &s.trip.SeatMap[i]
		}
	}
	return nil
}

// SelectedSeats returns the selected seat numbers in insertion order.
func (s *Selection) SelectedSeats() []int {
	out := make([]int, len(s.seats))
	copy(out, s.seats)
	return out
}

// SetPickupPoint chooses the pickup point. The point must belong to the
// route and be pickup-capable.
func (s *Selection) SetPickupPoint(pointID int64) error {
	p := s.routePoint(pointID)
	if p == nil || !p.PointType.Pickup() {
		return ErrInvalidPoint
	}
	s.pickupID = pointID
	return nil
}

// SetDropoffPoint chooses the dropoff point. The point must belong to the
// route and be dropoff-capable.
func (s *Selection) SetDropoffPoint(pointID int64) error {
	p := s.routePoint(pointID)
	if p == nil || !p.PointType.Dropoff() {
		return ErrInvalidPoint
	}
	s.dropoffID = pointID
	return nil
}

// PickupPoint returns the currently selected pickup point.
func (s *Selection) PickupPoint() models.RoutePoint {
	return *s.routePoint(s.pickupID)
}

// DropoffPoint returns the currently selected dropoff point.
func (s *Selection) DropoffPoint() models.RoutePoint {
	return *s.routePoint(s.dropoffID)
}

func (s *Selection) routePoint(id int64) *models.RoutePoint {
	for i := range s.trip.Route.Points {
		if s.trip.Route.Points[i].ID == id {
			return &s.trip.Route.Points[i]
		}
	}
	return nil
}

// PickupPoints lists the route's pickup-capable points in route order.
func (s *Selection) PickupPoints() []models.RoutePoint {
	var out []models.RoutePoint
	for _, p := range s.trip.Route.Points {
		if p.PointType.Pickup() {
			out = append(out, p)
		}
	}
	return out
}

// DropoffPoints lists the route's dropoff-capable points in route order.
func (s *Selection) DropoffPoints() []models.RoutePoint {
	var out []models.RoutePoint
	for _, p := range s.trip.Route.Points {
		if p.PointType.Dropoff() {
			out = append(out, p)
		}
	}
	return out
}

// Total computes the price:
//
//	seats × (base price + pickup surcharge + dropoff surcharge)
//
// It is recomputed from current state on every call, so changing a point
// selection is immediately reflected.
func (s *Selection) Total() float64 {
	perSeat := s.trip.Route.BasePrice + s.PickupPoint().Surcharge + s.DropoffPoint().Surcharge
	return float64(len(s.seats)) * perSeat
}

// Trip returns the trip this selection was built from.
func (s *Selection) Trip() *models.Trip {
	return s.trip
}
