package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: booking not found", domain.ErrNotFound)

	// ErrInvalidBookingID возвращается для идентификатора не в формате UUID
	ErrInvalidBookingID = fmt.Errorf("%w: invalid booking id", domain.ErrValidation)

	// ErrInvalidDate возвращается для пустой даты
	ErrInvalidDate = fmt.Errorf("%w: invalid date", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
