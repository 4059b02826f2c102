// Package http exposes the booking endpoints: seat-selection submission and
// booking history.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/utils"
	"github.com/viebus/viebus/services/booking/usecase"
)

// BookingHandler handles HTTP requests for bookings
type BookingHandler struct {
	bookingUC *usecase.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC *usecase.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

type createBookingRequest struct {
	TripID       int64 `json:"trip_id"`
	Seats        []int `json:"seats"`
	PickupPoint  int64 `json:"pickup_point,omitempty"`
	DropoffPoint int64 `json:"dropoff_point,omitempty"`
}

type createBookingResponse struct {
	BookingIDs []int64 `json:"booking_ids"`
	Total      float64 `json:"total"`
}

// Create runs the full selection flow for one request: fetch a fresh seat
// map, select the requested seats and points, then submit one booking per
// seat. A seat that is already booked fails the request instead of being
// silently skipped, so the caller never pays for fewer seats than asked.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TripID == 0 {
		return utils.BadRequestResponse(c, "Trip id is required")
	}
	if len(req.Seats) == 0 {
		return utils.BadRequestResponse(c, "At least one seat is required")
	}

	ctx := c.Request().Context()

	sel, err := h.bookingUC.StartSelection(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, usecase.ErrRouteNotBookable) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.UpstreamErrorResponse(c, err)
	}

	for _, seat := range req.Seats {
		if err := sel.ToggleSeat(seat); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
	}
	// ToggleSeat treats booked seats as a no-op; over HTTP that would
	// quietly book fewer seats than requested, so reject instead.
	if selected := sel.SelectedSeats(); len(selected) != len(req.Seats) {
		return utils.ErrorResponseHandler(c, http.StatusConflict,
			"Some requested seats are already booked")
	}

	if req.PickupPoint != 0 {
		if err := sel.SetPickupPoint(req.PickupPoint); err != nil {
			return utils.BadRequestResponse(c, "Invalid pickup point")
		}
	}
	if req.DropoffPoint != 0 {
		if err := sel.SetDropoffPoint(req.DropoffPoint); err != nil {
			return utils.BadRequestResponse(c, "Invalid dropoff point")
		}
	}

	total := sel.Total()
	created, err := h.bookingUC.Submit(ctx, sel)
	if err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		if len(created) > 0 {
			// Partial batch: the created bookings are real server-side
			// records, so hand their ids back for the payment page.
			return utils.FieldErrorResponse(c, http.StatusBadGateway,
				fmt.Sprintf("Booking failed after %d of %d seats", len(created), len(req.Seats)),
				map[string]interface{}{"created_booking_ids": created})
		}
		return utils.UpstreamErrorResponse(c, err)
	}

	logger.Info("bookings created",
		logger.Int64("trip_id", req.TripID),
		logger.Int64s("booking_ids", created))
	return utils.SuccessResponse(c, http.StatusCreated, "Bookings created",
		createBookingResponse{BookingIDs: created, Total: total})
}

// History lists the current user's bookings
func (h *BookingHandler) History(c echo.Context) error {
	bookings, err := h.bookingUC.History(c.Request().Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}
