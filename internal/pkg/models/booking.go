package models

// BookingStatus is the server-owned lifecycle state of a booking. The client
// never transitions it locally; expiry countdowns trigger a re-fetch instead.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusExpired   BookingStatus = "EXPIRED"
)

// Booking is the compact booking record returned by booking creation.
type Booking struct {
	ID           int64         `json:"id"`
	Trip         int64         `json:"trip"`
	SeatNumber   int           `json:"seat_number"`
	PickupPoint  int64         `json:"pickup_point"`
	DropoffPoint int64         `json:"dropoff_point"`
	PricePaid    float64       `json:"price_paid"`
	Status       BookingStatus `json:"status"`
}

// BookingDetail is the expanded booking record used by the booking history
// view, with the trip and route points resolved.
type BookingDetail struct {
	ID            int64         `json:"id"`
	Trip          Trip          `json:"trip"`
	SeatNumber    int           `json:"seat_number"`
	PickupPoint   RoutePoint    `json:"pickup_point"`
	DropoffPoint  RoutePoint    `json:"dropoff_point"`
	PricePaid     float64       `json:"price_paid"`
	Status        BookingStatus `json:"status"`
	StatusDisplay string        `json:"status_display"`
	BookingTime   string        `json:"booking_time"`
	ExpiresAt     string        `json:"expires_at,omitempty"`
	HasReview     bool          `json:"has_review"`
}

// CreateBookingRequest is the body of a single-seat booking creation call.
type CreateBookingRequest struct {
	Trip         int64 `json:"trip"`
	SeatNumber   int   `json:"seat_number"`
	PickupPoint  int64 `json:"pickup_point"`
	DropoffPoint int64 `json:"dropoff_point"`
}

// CreateBookingResponse wraps the created booking with a server message.
type CreateBookingResponse struct {
	Message string  `json:"message"`
	Data    Booking `json:"data"`
}
