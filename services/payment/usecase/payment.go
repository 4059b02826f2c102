// Package usecase implements the payment hand-off: resume an existing
// payment for a booking set or create one and redirect to the provider.
package usecase

import (
	"context"
	"errors"

	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/services/api"
	"github.com/viebus/viebus/services/payment"
)

// ErrNoBookings reports an empty booking id list before any API call.
var ErrNoBookings = errors.New("no bookings to pay for")

// Handoff drives the payment flow for one or more bookings.
type Handoff struct {
	gw payment.PaymentGW
}

// NewHandoff creates a new payment hand-off instance
func NewHandoff(gw payment.PaymentGW) *Handoff {
	return &Handoff{gw: gw}
}

// Load looks up an existing payment for the booking set (keyed by its first
// booking). (nil, nil) means no payment exists yet — the caller shows the
// create call-to-action instead of treating absence as an error. Any
// non-404 failure is returned as-is: a transport error must not be
// conflated with "not paid yet".
func (h *Handoff) Load(ctx context.Context, bookingIDs []int64) (*models.Payment, error) {
	if len(bookingIDs) == 0 {
		return nil, ErrNoBookings
	}

	p, err := h.gw.GetBookingPayment(ctx, bookingIDs[0])
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create requests a payment covering every booking; the server computes the
// aggregate amount. The returned record carries the provider redirect URL —
// navigating there is an irrevocable hand-off. Create is only ever invoked
// by explicit user action, never automatically after Load finds a payment.
func (h *Handoff) Create(ctx context.Context, bookingIDs []int64) (*models.Payment, error) {
	if len(bookingIDs) == 0 {
		return nil, ErrNoBookings
	}

	p, err := h.gw.CreatePayment(ctx, bookingIDs)
	if err != nil {
		return nil, err
	}

	logger.Info("payment created",
		logger.String("order_id", p.OrderID),
		logger.Float64("amount", p.Amount),
		logger.Int64s("booking_ids", bookingIDs))
	return p, nil
}

// Presentation maps a payment status to what the UI should offer.
type Presentation struct {
	ShowRedirect bool // PENDING with a pay URL: open provider / QR surface
	ShowDone     bool // SUCCESS: completion affordance
	ShowRetry    bool // FAILED: retry re-invokes Create
	Terminal     bool // CANCELLED: shown as-is, nothing to do
}

// Describe is a pure function of the payment's status field.
func Describe(p *models.Payment) Presentation {
	switch p.Status {
	case models.PaymentStatusPending:
		return Presentation{ShowRedirect: p.PayURL != ""}
	case models.PaymentStatusSuccess:
		return Presentation{ShowDone: true}
	case models.PaymentStatusFailed:
		return Presentation{ShowRetry: true}
	default:
		return Presentation{Terminal: true}
	}
}
