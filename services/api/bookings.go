package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viebus/viebus/internal/pkg/models"
)

// CreateBooking creates one booking for a single seat. Requires
// authentication.
func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var resp models.CreateBookingResponse
	if err := c.Request(ctx, http.MethodPost, "/bookings/", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// MyBookings lists the caller's bookings, newest first.
func (c *Client) MyBookings(ctx context.Context) ([]models.BookingDetail, error) {
	var bookings []models.BookingDetail
	if err := c.Request(ctx, http.MethodGet, "/my-bookings/", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBookingPayment looks up the payment attached to a booking. A 404 means
// no payment exists yet and is surfaced as an *APIError for the caller to
// classify.
func (c *Client) GetBookingPayment(ctx context.Context, bookingID int64) (*models.Payment, error) {
	var payment models.Payment
	path := fmt.Sprintf("/bookings/%d/payment/", bookingID)
	if err := c.Request(ctx, http.MethodGet, path, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
