package domain

import (
	"fmt"
	"time"
)

// OrderMetadata описание заказа, передаваемое в платёжный шлюз
type OrderMetadata struct {
	BookingID        string
	SelectedDate     time.Time
	SelectedTimeSlot TimeLabel
	MakeAndModel     string
	RegistrationNo   string
}

// Description returns a short human readable order description
func (m OrderMetadata) Description() string {
	return fmt.Sprintf("Vehicle service %s %s: %s (%s)",
		m.SelectedDate.Format(DateFormat), m.SelectedTimeSlot, m.MakeAndModel, m.RegistrationNo)
}

// PaymentOrder созданный во внешнем шлюзе заказ
type PaymentOrder struct {
	OrderID     string
	ApprovalURL string
}

// CaptureResult разобранный callback о capture платежа
type CaptureResult struct {
	OrderID   string
	Status    string
	CaptureID string
	Amount    float64
	Currency  string
}

// RefundResult результат возврата во внешнем шлюзе
type RefundResult struct {
	RefundID string
	Status   string
}

// BookingDetails сводка бронирования для уведомлений
type BookingDetails struct {
	SelectedDate         time.Time
	SelectedTimeSlot     TimeLabel
	TotalPrice           float64
	ServiceDescription   string
	HowDidYouHearAboutUs string
	PaymentMethod        PaymentMethod
	PaymentStatus        string // "Completed" или "Pending"
	InvoiceNumber        string
}

// NewBookingDetails собирает сводку. paidAmount <= 0 означает, что берётся цена бронирования.
func NewBookingDetails(b *Booking, paidAmount float64) *BookingDetails {
	total := b.TotalPrice
	if paidAmount > 0 {
		total = paidAmount
	}

	status := "Pending"
	if b.IsCompleted() {
		status = "Completed"
	}

	return &BookingDetails{
		SelectedDate:         b.SelectedDate,
		SelectedTimeSlot:     b.SelectedTimeSlot,
		TotalPrice:           total,
		ServiceDescription:   fmt.Sprintf("Vehicle: %s, Registration: %s", b.MakeAndModel, b.RegistrationNo),
		HowDidYouHearAboutUs: b.HowDidYouHearAboutUs,
		PaymentMethod:        b.PaymentMethod,
		PaymentStatus:        status,
		InvoiceNumber:        b.OrderID(),
	}
}
