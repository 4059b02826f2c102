package payment

import (
	"context"

	"github.com/viebus/viebus/internal/pkg/models"
)

// PaymentGW is the slice of the API client the hand-off flow depends on.
type PaymentGW interface {
	GetBookingPayment(ctx context.Context, bookingID int64) (*models.Payment, error)
	CreatePayment(ctx context.Context, bookingIDs []int64) (*models.Payment, error)
}
