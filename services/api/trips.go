package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/viebus/viebus/internal/pkg/models"
)

// SearchTrips lists trips matching the given filters. Public: no credential
// is attached.
func (c *Client) SearchTrips(ctx context.Context, params models.TripSearchParams) ([]models.Trip, error) {
	query := url.Values{}
	if params.Origin != "" {
		query.Set("origin", params.Origin)
	}
	if params.Destination != "" {
		query.Set("destination", params.Destination)
	}
	if params.Date != "" {
		query.Set("date", params.Date)
	}

	path := "/trips/"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var trips []models.Trip
	if err := c.Request(ctx, http.MethodGet, path, nil, &trips, Public()); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip fetches one trip with its seat map. The booked flags are
// authoritative only at fetch time.
func (c *Client) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	var trip models.Trip
	if err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/trips/%d/", id), nil, &trip, Public()); err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListRoutes lists all routes.
func (c *Client) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := c.Request(ctx, http.MethodGet, "/routes/", nil, &routes, Public()); err != nil {
		return nil, err
	}
	return routes, nil
}

// ListBuses lists the fleet with images and amenities.
func (c *Client) ListBuses(ctx context.Context) ([]models.BusDetail, error) {
	var buses []models.BusDetail
	if err := c.Request(ctx, http.MethodGet, "/buses/", nil, &buses, Public()); err != nil {
		return nil, err
	}
	return buses, nil
}

// ListAmenities lists all amenity definitions.
func (c *Client) ListAmenities(ctx context.Context) ([]models.BusAmenity, error) {
	var amenities []models.BusAmenity
	if err := c.Request(ctx, http.MethodGet, "/amenities/", nil, &amenities, Public()); err != nil {
		return nil, err
	}
	return amenities, nil
}
