package models

// Review is a customer review of a bus, shown on trip detail pages.
type Review struct {
	ID         int64  `json:"id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Image      string `json:"image,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// CreateReviewRequest creates a review against a completed booking.
type CreateReviewRequest struct {
	Booking int64  `json:"booking"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
