package handlers

import (
	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingFormRequest поля формы бронирования в теле запроса
type BookingFormRequest struct {
	FirstName                 string  `json:"firstName"`
	LastName                  string  `json:"lastName"`
	Email                     string  `json:"email"`
	ContactNumber             string  `json:"contactNumber"`
	SelectedDate              string  `json:"selectedDate"`     // "2024-07-16" или RFC3339
	SelectedTimeSlot          string  `json:"selectedTimeSlot"` // "10:00"
	TotalPrice                float64 `json:"totalPrice"`
	MakeAndModel              string  `json:"makeAndModel"`
	RegistrationNo            string  `json:"registrationNo"`
	AwareOfCancellationPolicy bool    `json:"awareOfCancellationPolicy"`
	HowDidYouHearAboutUs      string  `json:"howDidYouHearAboutUs"`
	PaymentMethod             string  `json:"paymentMethod"`
	BookedBy                  string  `json:"bookedBy,omitempty"`
}

// ToDomain конвертирует запрос в форму бронирования.
// Пустая дата остается нулевой, ее отсутствие сообщит валидация формы.
func (r *BookingFormRequest) ToDomain() (domain.BookingForm, error) {
	form := domain.BookingForm{
		FirstName:                 r.FirstName,
		LastName:                  r.LastName,
		Email:                     r.Email,
		ContactNumber:             r.ContactNumber,
		SelectedTimeSlot:          domain.TimeLabel(r.SelectedTimeSlot),
		TotalPrice:                r.TotalPrice,
		MakeAndModel:              r.MakeAndModel,
		RegistrationNo:            r.RegistrationNo,
		AwareOfCancellationPolicy: r.AwareOfCancellationPolicy,
		HowDidYouHearAboutUs:      r.HowDidYouHearAboutUs,
		PaymentMethod:             domain.PaymentMethod(r.PaymentMethod),
		BookedBy:                  domain.BookingChannel(r.BookedBy),
	}

	if r.SelectedDate != "" {
		date, err := ParseDate(r.SelectedDate)
		if err != nil {
			return form, err
		}
		form.SelectedDate = date
	}

	return form, nil
}
