package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/services/api"
)

type fakePaymentGW struct {
	payment *models.Payment
	getErr  error

	created     *models.Payment
	createErr   error
	getCalls    []int64
	createCalls [][]int64
}

func (f *fakePaymentGW) GetBookingPayment(ctx context.Context, bookingID int64) (*models.Payment, error) {
	f.getCalls = append(f.getCalls, bookingID)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.payment, nil
}

func (f *fakePaymentGW) CreatePayment(ctx context.Context, bookingIDs []int64) (*models.Payment, error) {
	f.createCalls = append(f.createCalls, bookingIDs)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func TestLoadReturnsExistingPayment(t *testing.T) {
	existing := &models.Payment{
		ID:      5,
		OrderID: "MOMO-123",
		Status:  models.PaymentStatusPending,
		PayURL:  "https://test-payment.momo.vn/pay/MOMO-123",
	}
	gw := &fakePaymentGW{payment: existing}

	p, err := NewHandoff(gw).Load(context.Background(), []int64{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, existing, p)

	// The booking set is keyed by its first booking.
	assert.Equal(t, []int64{7}, gw.getCalls)
	assert.Empty(t, gw.createCalls, "loading must never create a payment")
}

func TestLoadTreatsNotFoundAsNoPayment(t *testing.T) {
	gw := &fakePaymentGW{getErr: &api.APIError{Status: http.StatusNotFound, Message: "Not found."}}

	p, err := NewHandoff(gw).Load(context.Background(), []int64{7})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLoadSurfacesTransportFailures(t *testing.T) {
	upstreamErr := errors.New("connection refused")
	gw := &fakePaymentGW{getErr: upstreamErr}

	_, err := NewHandoff(gw).Load(context.Background(), []int64{7})
	assert.ErrorIs(t, err, upstreamErr, "a transport error is not the same as not paid yet")
}

func TestLoadRejectsEmptyBookingSet(t *testing.T) {
	gw := &fakePaymentGW{}
	_, err := NewHandoff(gw).Load(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoBookings)
	assert.Empty(t, gw.getCalls)
}

func TestCreateCoversAllBookings(t *testing.T) {
	created := &models.Payment{
		ID:      9,
		OrderID: "MOMO-456",
		Amount:  340000,
		Status:  models.PaymentStatusPending,
		PayURL:  "https://test-payment.momo.vn/pay/MOMO-456",
	}
	gw := &fakePaymentGW{created: created}

	p, err := NewHandoff(gw).Create(context.Background(), []int64{7, 8})
	require.NoError(t, err)
	assert.Equal(t, created, p)
	assert.Equal(t, [][]int64{{7, 8}}, gw.createCalls)
}

func TestCreateRejectsEmptyBookingSet(t *testing.T) {
	gw := &fakePaymentGW{}
	_, err := NewHandoff(gw).Create(context.Background(), []int64{})
	assert.ErrorIs(t, err, ErrNoBookings)
	assert.Empty(t, gw.createCalls)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		payment models.Payment
		want    Presentation
	}{
		{
			name:    "pending with pay url offers the redirect",
			payment: models.Payment{Status: models.PaymentStatusPending, PayURL: "https://pay"},
			want:    Presentation{ShowRedirect: true},
		},
		{
			name:    "pending without pay url offers nothing",
			payment: models.Payment{Status: models.PaymentStatusPending},
			want:    Presentation{},
		},
		{
			name:    "success offers the done affordance",
			payment: models.Payment{Status: models.PaymentStatusSuccess},
			want:    Presentation{ShowDone: true},
		},
		{
			name:    "failed offers retry",
			payment: models.Payment{Status: models.PaymentStatusFailed},
			want:    Presentation{ShowRetry: true},
		},
		{
			name:    "cancelled is terminal",
			payment: models.Payment{Status: models.PaymentStatusCancelled},
			want:    Presentation{Terminal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(&tt.payment))
		})
	}
}
