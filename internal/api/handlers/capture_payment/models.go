package capture_payment

import (
	"encoding/json"

	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
	capturePayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/capture_payment"
)

// CaptureResponse HTTP response model
type CaptureResponse struct {
	Message         string                  `json:"message"`
	Booking         *models.BookingResponse `json:"booking"`
	Capture         json.RawMessage         `json:"capture"`
	AlreadyCaptured bool                    `json:"alreadyCaptured"`
}

func fromUseCaseResponse(resp *capturePayment.Response) *CaptureResponse {
	message := msgCaptured
	if resp.AlreadyCaptured {
		message = msgAlreadyCaptured
	}
	return &CaptureResponse{
		Message:         message,
		Booking:         models.FromDomainBooking(resp.Booking),
		Capture:         resp.Payload,
		AlreadyCaptured: resp.AlreadyCaptured,
	}
}
