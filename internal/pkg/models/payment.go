package models

// PaymentStatus is the provider-side state of a payment order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSuccess   PaymentStatus = "SUCCESS"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Payment is an order record tied to one or more bookings. PayURL is the
// provider redirect target; once the user navigates there the hand-off is
// irrevocable and no client-side state transition happens until they return.
type Payment struct {
	ID            int64         `json:"id"`
	OrderID       string        `json:"order_id"`
	TransID       string        `json:"trans_id,omitempty"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	StatusDisplay string        `json:"status_display"`
	PayURL        string        `json:"pay_url,omitempty"`
	Deeplink      string        `json:"deeplink,omitempty"`
	QRCodeURL     string        `json:"qr_code_url,omitempty"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// CreatePaymentRequest carries every booking the payment should cover. The
// server computes the aggregate amount and is trusted to deduplicate repeat
// calls for the same booking set.
type CreatePaymentRequest struct {
	BookingIDs []int64 `json:"booking_ids"`
}
