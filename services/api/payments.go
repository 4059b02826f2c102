package api

import (
	"context"
	"net/http"

	"github.com/viebus/viebus/internal/pkg/models"
)

// CreatePayment creates (or resumes, server side) a MoMo payment covering
// all given bookings. The server computes the aggregate amount and is
// trusted not to double-charge a booking set.
func (c *Client) CreatePayment(ctx context.Context, bookingIDs []int64) (*models.Payment, error) {
	var payment models.Payment
	err := c.Request(ctx, http.MethodPost, "/payments/momo/create/",
		models.CreatePaymentRequest{BookingIDs: bookingIDs}, &payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
