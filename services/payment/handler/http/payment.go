// Package http exposes the payment hand-off endpoints.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/utils"
	"github.com/viebus/viebus/services/payment/usecase"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	handoff *usecase.Handoff
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(handoff *usecase.Handoff) *PaymentHandler {
	return &PaymentHandler{handoff: handoff}
}

type createPaymentRequest struct {
	BookingIDs []int64 `json:"booking_ids"`
}

type paymentResponse struct {
	Payment      interface{}          `json:"payment"`
	Presentation usecase.Presentation `json:"presentation"`
}

// Load returns the payment covering the booking set, if one exists. A null
// payment means none has been created yet and the UI should offer the create
// action; upstream failures are reported as errors, never as "not paid".
func (h *PaymentHandler) Load(c echo.Context) error {
	bookingIDs, err := parseBookingIDs(c.QueryParam("booking_ids"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking_ids")
	}

	p, err := h.handoff.Load(c.Request().Context(), bookingIDs)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBookings) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.UpstreamErrorResponse(c, err)
	}
	if p == nil {
		return utils.SuccessResponse(c, http.StatusOK, "", paymentResponse{Payment: nil})
	}

	return utils.SuccessResponse(c, http.StatusOK, "", paymentResponse{
		Payment:      p,
		Presentation: usecase.Describe(p),
	})
}

// LoadForBooking returns the payment attached to a single booking
func (h *PaymentHandler) LoadForBooking(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	p, err := h.handoff.Load(c.Request().Context(), []int64{id})
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	if p == nil {
		return utils.SuccessResponse(c, http.StatusOK, "", paymentResponse{Payment: nil})
	}

	return utils.SuccessResponse(c, http.StatusOK, "", paymentResponse{
		Payment:      p,
		Presentation: usecase.Describe(p),
	})
}

// Create requests a payment covering the bookings and returns the provider
// redirect URL. Only ever called on explicit user action.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	p, err := h.handoff.Create(c.Request().Context(), req.BookingIDs)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBookings) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.UpstreamErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment created", paymentResponse{
		Payment:      p,
		Presentation: usecase.Describe(p),
	})
}

func parseBookingIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
