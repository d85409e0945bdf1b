package domain

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod settlement method of a booking
type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "PayPal"
	PaymentMethodCash   PaymentMethod = "Cash"
)

// IsValid returns true for PayPal and Cash
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodPayPal || m == PaymentMethodCash
}

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// RefundStatus represents the refund state of a booking
type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundCompleted RefundStatus = "completed"
	RefundFailed    RefundStatus = "failed"
	RefundReversed  RefundStatus = "reversed"
)

// BookingChannel who created the booking
type BookingChannel string

const (
	ChannelAdmin    BookingChannel = "admin"
	ChannelCustomer BookingChannel = "customer"
)

// IsValid returns true for admin and customer
func (c BookingChannel) IsValid() bool {
	return c == ChannelAdmin || c == ChannelCustomer
}

// GatewayStatusCompleted статус успешного capture в PayPal
const GatewayStatusCompleted = "COMPLETED"

// Booking represents a customer booking of a service slot
type Booking struct {
	ID string

	// Данные клиента
	CustomerName  string // first + " " + last, пересчитывается при каждом сохранении
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string

	// Данные услуги
	SelectedDate              time.Time // только дата, полночь UTC
	SelectedTimeSlot          TimeLabel
	TotalPrice                float64
	MakeAndModel              string
	RegistrationNo            string
	AwareOfCancellationPolicy bool
	HowDidYouHearAboutUs      string
	BookedBy                  BookingChannel

	// Оплата
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	PaypalOrderID *string // ID заказа PayPal или номер счёта для Cash
	CaptureID     *string

	// Возврат
	RefundID     *string
	RefundStatus RefundStatus
	RefundAmount *float64
	RefundReason *string
	RefundDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns first and last name joined with a space
func (b *Booking) DisplayName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// RefreshDerived recomputes derived attributes, called before every persist
func (b *Booking) RefreshDerived() {
	b.CustomerName = b.DisplayName()
}

// IsPending returns true while the payment is not settled
func (b *Booking) IsPending() bool {
	return b.PaymentStatus == PaymentPending
}

// IsCompleted returns true if the payment has been captured
func (b *Booking) IsCompleted() bool {
	return b.PaymentStatus == PaymentCompleted
}

// CanBeCancelled returns true if the booking can be cancelled (only pending payments)
func (b *Booking) CanBeCancelled() bool {
	return b.IsPending()
}

// EnsureCancellable returns ErrBookingNotPending for settled bookings
func (b *Booking) EnsureCancellable() error {
	if !b.CanBeCancelled() {
		return fmt.Errorf("%w: status=%s", ErrBookingNotPending, b.PaymentStatus)
	}
	return nil
}

// ApplyCapture applies the gateway capture status.
// Returns changed=false without error if the payment is already completed.
// A non COMPLETED status leaves the booking pending so the capture can be retried
// or the booking cancelled manually.
func (b *Booking) ApplyCapture(gatewayStatus string, captureID string) (bool, error) {
	if b.IsCompleted() {
		return false, nil
	}

	if gatewayStatus != GatewayStatusCompleted {
		return false, fmt.Errorf("%w: gateway status %q", ErrCaptureNotCompleted, gatewayStatus)
	}

	if captureID == "" {
		return false, ErrMissingCaptureID
	}

	id := captureID
	b.PaymentStatus = PaymentCompleted
	b.CaptureID = &id
	return true, nil
}

// ApplyRefund records a completed refund. Allowed regardless of the payment status.
func (b *Booking) ApplyRefund(refundID string, amount float64, reason string, at time.Time) {
	id := refundID
	amt := amount
	date := at
	b.RefundStatus = RefundCompleted
	b.RefundID = &id
	b.RefundAmount = &amt
	b.RefundDate = &date
	if reason != "" {
		r := reason
		b.RefundReason = &r
	} else {
		b.RefundReason = nil
	}
}

// OrderID returns the stored order id or an empty string
func (b *Booking) OrderID() string {
	if b.PaypalOrderID == nil {
		return ""
	}
	return *b.PaypalOrderID
}
