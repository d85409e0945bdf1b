package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *BookingForm {
	return &BookingForm{
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "jane@example.com",
		ContactNumber:        "07700900000",
		SelectedDate:         time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC),
		SelectedTimeSlot:     "10:00",
		TotalPrice:           50,
		MakeAndModel:         "Ford Focus",
		RegistrationNo:       "AB12 CDE",
		HowDidYouHearAboutUs: "Google",
		PaymentMethod:        PaymentMethodCash,
	}
}

func TestBookingForm_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(f *BookingForm)
		wantErr error
	}{
		{"valid", func(f *BookingForm) {}, nil},
		{"missing first name", func(f *BookingForm) { f.FirstName = " " }, ErrRequiredFieldsMissing},
		{"missing date", func(f *BookingForm) { f.SelectedDate = time.Time{} }, ErrRequiredFieldsMissing},
		{"missing method", func(f *BookingForm) { f.PaymentMethod = "" }, ErrRequiredFieldsMissing},
		{"zero price", func(f *BookingForm) { f.TotalPrice = 0 }, ErrTotalPriceRequired},
		{"negative price", func(f *BookingForm) { f.TotalPrice = -10 }, ErrTotalPriceRequired},
		{"bad label", func(f *BookingForm) { f.SelectedTimeSlot = "19:00" }, ErrInvalidTimeLabel},
		{"bad referral", func(f *BookingForm) { f.HowDidYouHearAboutUs = "TikTok" }, ErrInvalidReferralSource},
		{"bad channel", func(f *BookingForm) { f.BookedBy = "robot" }, ErrInvalidChannel},
		{"bad email", func(f *BookingForm) { f.Email = "jane" }, ErrValidation},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)
			err := form.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBookingForm_ValidatePaymentMethod(t *testing.T) {
	form := validForm()
	assert.NoError(t, form.ValidatePaymentMethod())

	form.PaymentMethod = "Bitcoin"
	assert.NoError(t, form.Validate())
	assert.ErrorIs(t, form.ValidatePaymentMethod(), ErrInvalidPaymentMethod)
}

func TestNewPendingBooking(t *testing.T) {
	booking := NewPendingBooking("id-1", validForm())

	assert.Equal(t, "id-1", booking.ID)
	assert.Equal(t, "Jane Doe", booking.CustomerName)
	assert.Equal(t, PaymentPending, booking.PaymentStatus)
	assert.Equal(t, RefundPending, booking.RefundStatus)
	assert.Equal(t, ChannelCustomer, booking.BookedBy)
	assert.Nil(t, booking.PaypalOrderID)
}

func TestBooking_ApplyCapture(t *testing.T) {
	booking := NewPendingBooking("id-1", validForm())

	changed, err := booking.ApplyCapture("DECLINED", "CAP1")
	assert.False(t, changed)
	assert.ErrorIs(t, err, ErrCaptureNotCompleted)
	assert.ErrorIs(t, err, ErrPayment)
	assert.Equal(t, PaymentPending, booking.PaymentStatus)
	assert.Nil(t, booking.CaptureID)

	changed, err = booking.ApplyCapture(GatewayStatusCompleted, "")
	assert.False(t, changed)
	assert.ErrorIs(t, err, ErrMissingCaptureID)

	changed, err = booking.ApplyCapture(GatewayStatusCompleted, "CAP1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PaymentCompleted, booking.PaymentStatus)
	assert.Equal(t, "CAP1", *booking.CaptureID)

	// повторный capture - no-op, capture id не перезаписывается
	changed, err = booking.ApplyCapture(GatewayStatusCompleted, "CAP2")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "CAP1", *booking.CaptureID)

	changed, err = booking.ApplyCapture("VOIDED", "CAP3")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestBooking_EnsureCancellable(t *testing.T) {
	booking := NewPendingBooking("id-1", validForm())
	assert.NoError(t, booking.EnsureCancellable())

	booking.PaymentStatus = PaymentCompleted
	assert.ErrorIs(t, booking.EnsureCancellable(), ErrBookingNotPending)
	assert.ErrorIs(t, booking.EnsureCancellable(), ErrConflict)
}

func TestBooking_ApplyRefund(t *testing.T) {
	booking := NewPendingBooking("id-1", validForm())
	at := time.Date(2024, 7, 20, 9, 0, 0, 0, time.UTC)

	booking.ApplyRefund("REF1", 20, "customer request", at)

	assert.Equal(t, RefundCompleted, booking.RefundStatus)
	assert.Equal(t, "REF1", *booking.RefundID)
	assert.Equal(t, 20.0, *booking.RefundAmount)
	assert.Equal(t, "customer request", *booking.RefundReason)
	assert.Equal(t, at, *booking.RefundDate)
	// возврат не меняет статус оплаты
	assert.Equal(t, PaymentPending, booking.PaymentStatus)
}

func TestNewBookingDetails(t *testing.T) {
	booking := NewPendingBooking("id-1", validForm())
	invoice := "CASH-ORD-1-1"
	booking.PaypalOrderID = &invoice

	details := NewBookingDetails(booking, 0)
	assert.Equal(t, 50.0, details.TotalPrice)
	assert.Equal(t, "Pending", details.PaymentStatus)
	assert.Equal(t, "Vehicle: Ford Focus, Registration: AB12 CDE", details.ServiceDescription)
	assert.Equal(t, invoice, details.InvoiceNumber)

	_, err := booking.ApplyCapture(GatewayStatusCompleted, "CAP1")
	require.NoError(t, err)
	details = NewBookingDetails(booking, 49.5)
	assert.Equal(t, 49.5, details.TotalPrice)
	assert.Equal(t, "Completed", details.PaymentStatus)
}
