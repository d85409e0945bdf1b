package create_booking

import "github.com/m04kA/SMC-SlotPaymentService/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Form domain.BookingForm
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking       *domain.Booking
	PaypalOrderID string // только для PayPal
	ApprovalURL   string // только для PayPal
	InvoiceNumber string // только для Cash
}
