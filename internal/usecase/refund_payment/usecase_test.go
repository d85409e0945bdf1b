package refund_payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/testutil"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

var refundedAt = time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *testutil.Store
	gateway  *testutil.Gateway
	notifier *testutil.Notifier
	uc       *UseCase
}

func newFixture() *fixture {
	store := testutil.NewStore()
	form := testutil.Form(time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC))
	form.PaymentMethod = domain.PaymentMethodPayPal
	booking := domain.NewPendingBooking("b1", &form)
	_, _ = booking.ApplyCapture(domain.GatewayStatusCompleted, "CAP1")
	store.PutBooking(booking)

	gateway := testutil.NewGateway()
	notifier := &testutil.Notifier{}
	uc := NewUseCase(store.Bookings(), gateway, notifier, logger.NewNop())
	uc.timeProvider = &testutil.Clock{T: refundedAt}

	return &fixture{store: store, gateway: gateway, notifier: notifier, uc: uc}
}

func TestExecute_Refund(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{CaptureID: "CAP1", Amount: 20, Reason: "customer request"})
	require.NoError(t, err)
	assert.Equal(t, "REF1", resp.Refund.RefundID)

	stored, ok := f.store.Booking("b1")
	require.True(t, ok)
	assert.Equal(t, domain.RefundCompleted, stored.RefundStatus)
	require.NotNil(t, stored.RefundAmount)
	assert.Equal(t, 20.0, *stored.RefundAmount)
	require.NotNil(t, stored.RefundReason)
	assert.Equal(t, "customer request", *stored.RefundReason)
	require.NotNil(t, stored.RefundDate)
	assert.True(t, refundedAt.Equal(*stored.RefundDate))

	assert.Equal(t, "CAP1", f.gateway.LastCapture)
	assert.Equal(t, 20.0, f.gateway.LastAmount)
	assert.Equal(t, []string{"refund:b1", "admin_refund:b1"}, f.notifier.Sent())
}

func TestExecute_UnknownCaptureDoesNotCallGateway(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{CaptureID: "CAP2", Amount: 20})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.gateway.RefundCalls)
}

func TestExecute_GatewayFailure(t *testing.T) {
	f := newFixture()
	f.gateway.RefundErr = errors.New("capture already refunded")

	_, err := f.uc.Execute(context.Background(), &Request{CaptureID: "CAP1", Amount: 20})
	assert.ErrorIs(t, err, ErrRefundFailed)
	assert.ErrorIs(t, err, domain.ErrPayment)

	stored, ok := f.store.Booking("b1")
	require.True(t, ok)
	assert.Equal(t, domain.RefundPending, stored.RefundStatus)
	assert.Empty(t, f.notifier.Sent())
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"missing capture", Request{Amount: 20}, ErrCaptureIDRequired},
		{"zero amount", Request{CaptureID: "CAP1"}, ErrInvalidAmount},
		{"negative amount", Request{CaptureID: "CAP1", Amount: -5}, ErrInvalidAmount},
		{"long reason", Request{CaptureID: "CAP1", Amount: 20, Reason: strings.Repeat("a", domain.MaxRefundReasonLength+1)}, ErrReasonTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, f.gateway.RefundCalls)
		})
	}
}
