package refund_payment

import "github.com/m04kA/SMC-SlotPaymentService/internal/domain"

// Request модель запроса на возврат
type Request struct {
	CaptureID string
	Amount    float64
	Reason    string
}

// Response модель ответа
type Response struct {
	Booking *domain.Booking
	Refund  *domain.RefundResult
}
