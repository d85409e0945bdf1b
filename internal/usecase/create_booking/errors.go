package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrContactNumberRequired возвращается, когда не указан номер телефона
	ErrContactNumberRequired = fmt.Errorf("%w: contactNumber", domain.ErrRequiredFieldsMissing)

	// ErrPaymentOrder возвращается, когда платежный шлюз не создал заказ
	ErrPaymentOrder = fmt.Errorf("%w: failed to create payment order", domain.ErrPayment)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
