package cancel_payment

import "github.com/m04kA/SMC-SlotPaymentService/internal/domain"

// Request модель запроса на отмену оплаты
type Request struct {
	OrderID string
}

// Response модель ответа: удаленное бронирование и слоты дня после освобождения
type Response struct {
	Booking *domain.Booking
	Slots   []domain.SlotState
}
