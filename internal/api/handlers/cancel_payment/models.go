package cancel_payment

import (
	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
	cancelPayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/cancel_payment"
)

// CancelResponse HTTP response model
type CancelResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
	Date    string                  `json:"date"`
	Slots   []models.SlotResponse   `json:"slots"`
}

func fromUseCaseResponse(resp *cancelPayment.Response) *CancelResponse {
	return &CancelResponse{
		Message: msgCancelled,
		Booking: models.FromDomainBooking(resp.Booking),
		Date:    resp.Booking.SelectedDate.Format(domain.DateFormat),
		Slots:   models.FromDomainSlotList(resp.Slots),
	}
}
