package refund_payment

import (
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
	refundPayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/refund_payment"
)

// RefundRequest HTTP request model
type RefundRequest struct {
	CaptureID    string  `json:"captureId"`
	RefundAmount float64 `json:"refundAmount"`
	RefundReason string  `json:"refundReason,omitempty"`
}

// RefundResponse HTTP response model
type RefundResponse struct {
	Message  string                  `json:"message"`
	Booking  *models.BookingResponse `json:"booking"`
	RefundID string                  `json:"refundId"`
	Status   string                  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RefundRequest) ToUseCaseRequest() *refundPayment.Request {
	return &refundPayment.Request{
		CaptureID: r.CaptureID,
		Amount:    r.RefundAmount,
		Reason:    r.RefundReason,
	}
}

func fromUseCaseResponse(resp *refundPayment.Response) *RefundResponse {
	return &RefundResponse{
		Message:  msgRefunded,
		Booking:  models.FromDomainBooking(resp.Booking),
		RefundID: resp.Refund.RefundID,
		Status:   resp.Refund.Status,
	}
}
