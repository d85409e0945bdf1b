package check_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrSlotAlreadyBooked возвращается, когда на дату и время есть оплаченное бронирование
	ErrSlotAlreadyBooked = fmt.Errorf("%w: this time slot is already booked", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
