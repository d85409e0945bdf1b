package calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrEntryNotFound возвращается, когда на дату нет записи календаря
	ErrEntryNotFound = fmt.Errorf("%w: no time slot entry for this date", domain.ErrNotFound)

	// ErrConcurrentUpdate возвращается, когда слот изменили параллельно
	ErrConcurrentUpdate = fmt.Errorf("%w: time slot was modified concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
