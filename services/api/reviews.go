package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viebus/viebus/internal/pkg/models"
)

// ListReviews lists reviews, optionally filtered to one bus. Public.
func (c *Client) ListReviews(ctx context.Context, busID int64) ([]models.Review, error) {
	path := "/reviews/"
	if busID != 0 {
		path = fmt.Sprintf("/reviews/?bus_id=%d", busID)
	}

	var reviews []models.Review
	if err := c.Request(ctx, http.MethodGet, path, nil, &reviews, Public()); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview posts a review against a completed booking. Requires
// authentication.
func (c *Client) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.Request(ctx, http.MethodPost, "/reviews/", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
