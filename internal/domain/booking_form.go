package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingForm поля бронирования, которые присылает клиент.
// Используется и при проверке доступности, и при создании бронирования.
type BookingForm struct {
	FirstName                 string
	LastName                  string
	Email                     string
	ContactNumber             string
	SelectedDate              time.Time
	SelectedTimeSlot          TimeLabel
	TotalPrice                float64
	MakeAndModel              string
	RegistrationNo            string
	AwareOfCancellationPolicy bool
	HowDidYouHearAboutUs      string
	PaymentMethod             PaymentMethod
	BookedBy                  BookingChannel
}

// Validate checks required fields and the fixed enumerations.
// The payment method is only checked for presence here, see ValidatePaymentMethod.
func (f *BookingForm) Validate() error {
	missing := make([]string, 0)
	required := []struct {
		name  string
		value string
	}{
		{"firstName", f.FirstName},
		{"lastName", f.LastName},
		{"email", f.Email},
		{"selectedTimeSlot", string(f.SelectedTimeSlot)},
		{"makeAndModel", f.MakeAndModel},
		{"registrationNo", f.RegistrationNo},
		{"howDidYouHearAboutUs", f.HowDidYouHearAboutUs},
		{"paymentMethod", string(f.PaymentMethod)},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if f.SelectedDate.IsZero() {
		missing = append(missing, "selectedDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequiredFieldsMissing, strings.Join(missing, ", "))
	}

	if f.TotalPrice <= 0 {
		return ErrTotalPriceRequired
	}

	if len(f.FirstName) > MaxNameLength || len(f.LastName) > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrValidation, MaxNameLength)
	}

	if !strings.Contains(f.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}

	if !f.SelectedTimeSlot.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLabel, f.SelectedTimeSlot)
	}

	if !IsValidReferralSource(f.HowDidYouHearAboutUs) {
		return fmt.Errorf("%w: %q", ErrInvalidReferralSource, f.HowDidYouHearAboutUs)
	}

	if f.BookedBy != "" && !f.BookedBy.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidChannel, f.BookedBy)
	}

	return nil
}

// ValidatePaymentMethod returns ErrInvalidPaymentMethod for anything except PayPal and Cash
func (f *BookingForm) ValidatePaymentMethod() error {
	if !f.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, f.PaymentMethod)
	}
	return nil
}

// Channel returns BookedBy or customer by default
func (f *BookingForm) Channel() BookingChannel {
	if f.BookedBy == "" {
		return ChannelCustomer
	}
	return f.BookedBy
}

// NewPendingBooking создает бронирование в статусе pending из формы
func NewPendingBooking(id string, f *BookingForm) *Booking {
	booking := &Booking{
		ID:                        id,
		FirstName:                 strings.TrimSpace(f.FirstName),
		LastName:                  strings.TrimSpace(f.LastName),
		Email:                     strings.TrimSpace(f.Email),
		ContactNumber:             strings.TrimSpace(f.ContactNumber),
		SelectedDate:              NormalizeDate(f.SelectedDate),
		SelectedTimeSlot:          f.SelectedTimeSlot,
		TotalPrice:                f.TotalPrice,
		MakeAndModel:              strings.TrimSpace(f.MakeAndModel),
		RegistrationNo:            strings.TrimSpace(f.RegistrationNo),
		AwareOfCancellationPolicy: f.AwareOfCancellationPolicy,
		HowDidYouHearAboutUs:      f.HowDidYouHearAboutUs,
		BookedBy:                  f.Channel(),
		PaymentMethod:             f.PaymentMethod,
		PaymentStatus:             PaymentPending,
		RefundStatus:              RefundPending,
	}
	booking.RefreshDerived()
	return booking
}
