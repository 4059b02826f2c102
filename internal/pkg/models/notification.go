package models

import "time"

// Notification is a message shown in the notification bell. Server
// notifications carry positive ids; notifications synthesized client side
// (the login greeting) use negative local ids.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse is the payload of the unread-count endpoint.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
