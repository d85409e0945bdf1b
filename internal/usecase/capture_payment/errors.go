package capture_payment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrEmptyPayload возвращается для пустого тела callback
	ErrEmptyPayload = fmt.Errorf("%w: capture payload is empty", domain.ErrValidation)

	// ErrInvalidPayload возвращается, когда шлюз не смог разобрать callback
	ErrInvalidPayload = fmt.Errorf("%w: invalid capture payload", domain.ErrValidation)

	// ErrBookingNotFound возвращается, когда нет бронирования с таким заказом
	ErrBookingNotFound = fmt.Errorf("%w: booking not found for this order", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("capture_payment: internal error")
)
