// Package http exposes trip search and catalog endpoints.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/internal/utils"
	"github.com/viebus/viebus/services/trips/usecase"
)

// TripHandler handles HTTP requests for trip search, routes and the fleet
type TripHandler struct {
	tripUC *usecase.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC *usecase.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// Search lists trips matching the origin, destination and date filters.
// All filters are optional; an empty query lists upcoming trips.
func (h *TripHandler) Search(c echo.Context) error {
	params := models.TripSearchParams{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		Date:        c.QueryParam("date"),
	}

	found, err := h.tripUC.Search(c.Request().Context(), params)
	if err != nil {
		logger.Warn("trip search failed",
			logger.String("origin", params.Origin),
			logger.String("destination", params.Destination),
			logger.Err(err))
		return utils.UpstreamErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", found)
}

// GetTrip returns one trip with its seat map, always fetched fresh
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip id")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// ListRoutes lists all served routes
func (h *TripHandler) ListRoutes(c echo.Context) error {
	routes, err := h.tripUC.ListRoutes(c.Request().Context())
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", routes)
}

// ListBuses lists the fleet
func (h *TripHandler) ListBuses(c echo.Context) error {
	buses, err := h.tripUC.ListBuses(c.Request().Context())
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", buses)
}

// ListAmenities lists amenity definitions
func (h *TripHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.tripUC.ListAmenities(c.Request().Context())
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", amenities)
}

// ListReviews lists reviews, filtered to one bus when bus_id is given
func (h *TripHandler) ListReviews(c echo.Context) error {
	var busID int64
	if raw := c.QueryParam("bus_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid bus id")
		}
		busID = parsed
	}

	reviews, err := h.tripUC.ListReviews(c.Request().Context(), busID)
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reviews)
}

// CreateReview posts a review against a completed booking
func (h *TripHandler) CreateReview(c echo.Context) error {
	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Booking == 0 {
		return utils.BadRequestResponse(c, "Booking is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return utils.BadRequestResponse(c, "Rating must be between 1 and 5")
	}

	review, err := h.tripUC.CreateReview(c.Request().Context(), req)
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted", review)
}
