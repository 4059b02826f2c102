package models

// UserLoggedInEvent is published on the in-process event bus after a
// successful login. The notification subsystem is its only consumer.
type UserLoggedInEvent struct {
	Username string `json:"username"`
}
