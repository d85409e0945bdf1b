package capture_payment

import (
	"encoding/json"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// Request модель запроса: тело callback платежного шлюза как есть
type Request struct {
	Payload []byte
}

// Response модель ответа
type Response struct {
	Booking         *domain.Booking
	Capture         *domain.CaptureResult
	Payload         json.RawMessage // исходные данные capture для ответа клиенту
	AlreadyCaptured bool
}
