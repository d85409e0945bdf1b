package notifications

import (
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// Routing keys событий
const (
	EventBookingConfirmed  = "booking.confirmed"
	EventAdminNotice       = "booking.admin_notice"
	EventBookingRefunded   = "booking.refunded"
	EventAdminRefundNotice = "booking.admin_refund_notice"
	EventVersion           = 1
	RecipientAdmin         = "admin"
)

// Event сообщение для сервиса рассылки писем
type Event struct {
	Event      string          `json:"event"`
	Version    int             `json:"version"`
	OccurredAt time.Time       `json:"occurredAt"`
	Recipient  string          `json:"recipient"`
	Booking    BookingPayload  `json:"booking"`
	Details    *DetailsPayload `json:"details,omitempty"`
	Refund     *RefundPayload  `json:"refund,omitempty"`
}

type BookingPayload struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customerName"`
	Email            string `json:"email"`
	ContactNumber    string `json:"contactNumber,omitempty"`
	SelectedDate     string `json:"selectedDate"`
	SelectedTimeSlot string `json:"selectedTimeSlot"`
	MakeAndModel     string `json:"makeAndModel"`
	RegistrationNo   string `json:"registrationNo"`
	PaymentMethod    string `json:"paymentMethod"`
	PaymentStatus    string `json:"paymentStatus"`
	BookedBy         string `json:"bookedBy"`
}

type DetailsPayload struct {
	SelectedDate         string  `json:"selectedDate"`
	SelectedTimeSlot     string  `json:"selectedTimeSlot"`
	TotalPrice           float64 `json:"totalPrice"`
	ServiceDescription   string  `json:"serviceDescription"`
	HowDidYouHearAboutUs string  `json:"howDidYouHearAboutUs"`
	PaymentMethod        string  `json:"paymentMethod"`
	PaymentStatus        string  `json:"paymentStatus"`
	InvoiceNumber        string  `json:"invoiceNumber"`
}

type RefundPayload struct {
	RefundID  string    `json:"refundId"`
	CaptureID string    `json:"captureId"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason,omitempty"`
	Date      time.Time `json:"date"`
}

func newBookingPayload(b *domain.Booking) BookingPayload {
	return BookingPayload{
		ID:               b.ID,
		CustomerName:     b.DisplayName(),
		Email:            b.Email,
		ContactNumber:    b.ContactNumber,
		SelectedDate:     b.SelectedDate.Format(domain.DateFormat),
		SelectedTimeSlot: b.SelectedTimeSlot.String(),
		MakeAndModel:     b.MakeAndModel,
		RegistrationNo:   b.RegistrationNo,
		PaymentMethod:    string(b.PaymentMethod),
		PaymentStatus:    string(b.PaymentStatus),
		BookedBy:         string(b.BookedBy),
	}
}

func newDetailsPayload(d *domain.BookingDetails) *DetailsPayload {
	if d == nil {
		return nil
	}
	return &DetailsPayload{
		SelectedDate:         d.SelectedDate.Format(domain.DateFormat),
		SelectedTimeSlot:     d.SelectedTimeSlot.String(),
		TotalPrice:           d.TotalPrice,
		ServiceDescription:   d.ServiceDescription,
		HowDidYouHearAboutUs: d.HowDidYouHearAboutUs,
		PaymentMethod:        string(d.PaymentMethod),
		PaymentStatus:        d.PaymentStatus,
		InvoiceNumber:        d.InvoiceNumber,
	}
}

func newRefundPayload(b *domain.Booking) *RefundPayload {
	refund := &RefundPayload{}
	if b.RefundID != nil {
		refund.RefundID = *b.RefundID
	}
	if b.CaptureID != nil {
		refund.CaptureID = *b.CaptureID
	}
	if b.RefundAmount != nil {
		refund.Amount = *b.RefundAmount
	}
	if b.RefundReason != nil {
		refund.Reason = *b.RefundReason
	}
	if b.RefundDate != nil {
		refund.Date = *b.RefundDate
	}
	return refund
}
