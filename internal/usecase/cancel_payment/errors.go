package cancel_payment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrInvalidOrderID возвращается для пустого или слишком длинного идентификатора заказа
	ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", domain.ErrValidation)

	// ErrBookingNotFound возвращается, когда нет бронирования с таким заказом
	ErrBookingNotFound = fmt.Errorf("%w: booking not found for this order", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_payment: internal error")
)
