package models

// User represents the authenticated customer's identity record as returned
// by the booking API. It is cached alongside the token pair and is only ever
// created by login and destroyed by logout; the client never patches it.
type User struct {
	ID        int64  `json:"pk"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResponse is the payload returned by the login and registration
// endpoints: a token pair plus the user record.
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

// AuthTokens holds the persisted token pair. Both tokens are opaque strings;
// no expiry is tracked client side beyond server-driven 401 responses.
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the body of the token refresh call.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the rotated access token and, with some backends,
// a rotated refresh token as well.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of the registration call. The two password
// fields are validated client side for equality before the call is made.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}
