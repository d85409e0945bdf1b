package create_booking

import (
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/create_booking"
)

// PayPalBookingResponse ответ для оплаты через PayPal: клиент переходит по approvalUrl
type PayPalBookingResponse struct {
	Booking       *models.BookingResponse `json:"booking"`
	PaypalOrderID string                  `json:"paypalOrderId"`
	ApprovalURL   string                  `json:"approvalUrl"`
}

// CashBookingResponse ответ для оплаты наличными
type CashBookingResponse struct {
	Message       string                  `json:"message"`
	Booking       *models.BookingResponse `json:"booking"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	TotalPrice    float64                 `json:"totalPrice"`
	Email         string                  `json:"email"`
}

func fromPayPal(resp *createBooking.Response) *PayPalBookingResponse {
	return &PayPalBookingResponse{
		Booking:       models.FromDomainBooking(resp.Booking),
		PaypalOrderID: resp.PaypalOrderID,
		ApprovalURL:   resp.ApprovalURL,
	}
}

func fromCash(resp *createBooking.Response) *CashBookingResponse {
	return &CashBookingResponse{
		Message:       msgCashCreated,
		Booking:       models.FromDomainBooking(resp.Booking),
		InvoiceNumber: resp.InvoiceNumber,
		TotalPrice:    resp.Booking.TotalPrice,
		Email:         resp.Booking.Email,
	}
}
