package models

import (
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID string `json:"id"`

	CustomerName  string `json:"customerName"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`

	SelectedDate              string  `json:"selectedDate"`     // "2024-07-16"
	SelectedTimeSlot          string  `json:"selectedTimeSlot"` // "10:00"
	TotalPrice                float64 `json:"totalPrice"`
	MakeAndModel              string  `json:"makeAndModel"`
	RegistrationNo            string  `json:"registrationNo"`
	AwareOfCancellationPolicy bool    `json:"awareOfCancellationPolicy"`
	HowDidYouHearAboutUs      string  `json:"howDidYouHearAboutUs"`
	BookedBy                  string  `json:"bookedBy"`

	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	PaypalOrderID *string `json:"paypalOrderId,omitempty"`
	CaptureID     *string `json:"captureId,omitempty"`

	RefundID     *string  `json:"refundId,omitempty"`
	RefundStatus string   `json:"refundStatus"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
	RefundReason *string  `json:"refundReason,omitempty"`
	RefundDate   *string  `json:"refundDate,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotResponse состояние одного слота
type SlotResponse struct {
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	BookedBy  *string `json:"bookedBy,omitempty"`
	BlockedBy *string `json:"blockedBy,omitempty"`
}

// TimeSlotsResponse слоты дня
type TimeSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                        b.ID,
		CustomerName:              b.CustomerName,
		FirstName:                 b.FirstName,
		LastName:                  b.LastName,
		Email:                     b.Email,
		ContactNumber:             b.ContactNumber,
		SelectedDate:              b.SelectedDate.Format(domain.DateFormat),
		SelectedTimeSlot:          b.SelectedTimeSlot.String(),
		TotalPrice:                b.TotalPrice,
		MakeAndModel:              b.MakeAndModel,
		RegistrationNo:            b.RegistrationNo,
		AwareOfCancellationPolicy: b.AwareOfCancellationPolicy,
		HowDidYouHearAboutUs:      b.HowDidYouHearAboutUs,
		BookedBy:                  string(b.BookedBy),
		PaymentMethod:             string(b.PaymentMethod),
		PaymentStatus:             string(b.PaymentStatus),
		PaypalOrderID:             b.PaypalOrderID,
		CaptureID:                 b.CaptureID,
		RefundID:                  b.RefundID,
		RefundStatus:              string(b.RefundStatus),
		RefundAmount:              b.RefundAmount,
		RefundReason:              b.RefundReason,
		CreatedAt:                 b.CreatedAt,
		UpdatedAt:                 b.UpdatedAt,
	}

	// Конвертируем RefundDate в строку ISO 8601
	if b.RefundDate != nil {
		refundStr := b.RefundDate.Format(time.RFC3339)
		resp.RefundDate = &refundStr
	}

	return resp
}

// FromDomainSlotList конвертирует состояния слотов в DTO
func FromDomainSlotList(states []domain.SlotState) []SlotResponse {
	slots := make([]SlotResponse, len(states))
	for i, state := range states {
		slots[i] = SlotResponse{
			Time:      state.Time.String(),
			Status:    string(state.Status),
			BookedBy:  state.BookedBy,
			BlockedBy: state.BlockedBy,
		}
	}
	return slots
}

// FromDomainSlots слоты дня в DTO
func FromDomainSlots(date time.Time, states []domain.SlotState) *TimeSlotsResponse {
	return &TimeSlotsResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: FromDomainSlotList(states),
	}
}
