package models

// PointType classifies a route point as pickup-capable, dropoff-capable or both.
type PointType string

const (
	PointTypePickup  PointType = "PICKUP"
	PointTypeDropoff PointType = "DROPOFF"
	PointTypeBoth    PointType = "BOTH"
)

// Pickup reports whether passengers can board at a point of this type.
func (t PointType) Pickup() bool {
	return t == PointTypePickup || t == PointTypeBoth
}

// Dropoff reports whether passengers can alight at a point of this type.
func (t PointType) Dropoff() bool {
	return t == PointTypeDropoff || t == PointTypeBoth
}

// RoutePoint is one stop on a route. Surcharge is added per seat when the
// point is chosen as the pickup or dropoff location.
type RoutePoint struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PointType   PointType `json:"point_type"`
	TypeDisplay string    `json:"type_display"`
	Order       int       `json:"order"`
	Surcharge   float64   `json:"surcharge"`
}

// Route is a scheduled origin-destination pair with its ordered stops.
type Route struct {
	ID            int64        `json:"id"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	BasePrice     float64      `json:"base_price"`
	DurationHours float64      `json:"duration_hours"`
	Points        []RoutePoint `json:"points"`
}

// SeatInfo is one seat in a trip's seat map. IsBooked is authoritative only
// at fetch time; the server is the source of truth at submission.
type SeatInfo struct {
	Number   int  `json:"number"`
	IsBooked bool `json:"is_booked"`
}

// Trip is a scheduled run of a bus over a route.
type Trip struct {
	ID            int64      `json:"id"`
	Route         Route      `json:"route"`
	Bus           BusDetail  `json:"bus"`
	DepartureTime string     `json:"departure_time"`
	ArrivalTime   string     `json:"arrival_time"`
	Status        string     `json:"status"`
	SeatMap       []SeatInfo `json:"seat_map"`
}

// AvailableSeats counts seats not marked booked in the fetched seat map.
func (t *Trip) AvailableSeats() int {
	n := 0
	for _, s := range t.SeatMap {
		if !s.IsBooked {
			n++
		}
	}
	return n
}

// TripSearchParams are the public trip search filters. Empty fields are
// omitted from the query string.
type TripSearchParams struct {
	Origin      string
	Destination string
	Date        string
}
