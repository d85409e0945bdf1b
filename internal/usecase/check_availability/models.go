package check_availability

import "github.com/m04kA/SMC-SlotPaymentService/internal/domain"

// Request модель запроса на проверку доступности
type Request struct {
	Form domain.BookingForm
}

// Response модель ответа
type Response struct {
	Available bool
}
