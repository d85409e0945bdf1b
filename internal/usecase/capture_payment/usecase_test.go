package capture_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/testutil"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

const completedPayload = `{
	"id": "ORDER1",
	"status": "COMPLETED",
	"purchase_units": [{
		"amount": {"currency_code": "GBP", "value": "50.00"},
		"payments": {"captures": [{"id": "CAP1", "status": "COMPLETED"}]}
	}]
}`

type fixture struct {
	store    *testutil.Store
	notifier *testutil.Notifier
	uc       *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testutil.NewStore()
	form := testutil.Form(time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC))
	form.PaymentMethod = domain.PaymentMethodPayPal
	booking := domain.NewPendingBooking("b1", &form)
	orderID := "ORDER1"
	booking.PaypalOrderID = &orderID
	store.PutBooking(booking)

	notifier := &testutil.Notifier{}
	uc := NewUseCase(store.Bookings(), testutil.NewGateway(), notifier, store.TxManager(), logger.NewNop())

	return &fixture{store: store, notifier: notifier, uc: uc}
}

func TestExecute_Completed(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{Payload: []byte(completedPayload)})
	require.NoError(t, err)

	assert.False(t, resp.AlreadyCaptured)
	assert.Equal(t, domain.PaymentCompleted, resp.Booking.PaymentStatus)
	require.NotNil(t, resp.Booking.CaptureID)
	assert.Equal(t, "CAP1", *resp.Booking.CaptureID)
	assert.Equal(t, 50.0, resp.Capture.Amount)
	assert.JSONEq(t, completedPayload, string(resp.Payload))

	stored, ok := f.store.Booking("b1")
	require.True(t, ok)
	assert.True(t, stored.IsCompleted())
	assert.Equal(t, []string{"confirmation:b1", "admin:b1"}, f.notifier.Sent())
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{Payload: []byte(completedPayload)})
	require.NoError(t, err)

	resp, err := f.uc.Execute(context.Background(), &Request{Payload: []byte(completedPayload)})
	require.NoError(t, err)

	assert.True(t, resp.AlreadyCaptured)
	require.NotNil(t, resp.Booking.CaptureID)
	assert.Equal(t, "CAP1", *resp.Booking.CaptureID)
	assert.Len(t, f.notifier.Sent(), 2, "notifications are sent once")
}

func TestExecute_DeclinedLeavesBookingPending(t *testing.T) {
	f := newFixture(t)
	payload := `{"id": "ORDER1", "status": "DECLINED"}`

	_, err := f.uc.Execute(context.Background(), &Request{Payload: []byte(payload)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCaptureNotCompleted)
	assert.ErrorIs(t, err, domain.ErrPayment)

	stored, ok := f.store.Booking("b1")
	require.True(t, ok)
	assert.Equal(t, domain.PaymentPending, stored.PaymentStatus)
	assert.Nil(t, stored.CaptureID)
	assert.Empty(t, f.notifier.Sent())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"empty payload", "  ", ErrEmptyPayload},
		{"malformed json", "{", ErrInvalidPayload},
		{"missing order id", `{"status": "COMPLETED"}`, ErrInvalidPayload},
		{"unknown order", `{"id": "ORDER2", "status": "COMPLETED"}`, ErrBookingNotFound},
		{"completed without capture id", `{"id": "ORDER1", "status": "COMPLETED"}`, domain.ErrMissingCaptureID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.uc.Execute(context.Background(), &Request{Payload: []byte(tt.payload)})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.NotNil(t, domain.Kind(err))
		})
	}
}

func TestExecute_UpdateFailure(t *testing.T) {
	f := newFixture(t)
	f.store.Fail("Bookings.UpdatePayment", errors.New("db down"))

	_, err := f.uc.Execute(context.Background(), &Request{Payload: []byte(completedPayload)})
	assert.ErrorIs(t, err, ErrInternal)

	stored, ok := f.store.Booking("b1")
	require.True(t, ok)
	assert.True(t, stored.IsPending())
}
