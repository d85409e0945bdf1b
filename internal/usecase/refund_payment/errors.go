package refund_payment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

var (
	// ErrCaptureIDRequired возвращается, когда не указан идентификатор capture
	ErrCaptureIDRequired = fmt.Errorf("%w: captureId is required", domain.ErrValidation)

	// ErrInvalidAmount возвращается для суммы возврата <= 0
	ErrInvalidAmount = fmt.Errorf("%w: refund amount must be greater than zero", domain.ErrValidation)

	// ErrReasonTooLong возвращается для слишком длинной причины возврата
	ErrReasonTooLong = fmt.Errorf("%w: refund reason is too long", domain.ErrValidation)

	// ErrBookingNotFound возвращается, когда нет бронирования с таким capture
	ErrBookingNotFound = fmt.Errorf("%w: booking not found for this capture", domain.ErrNotFound)

	// ErrRefundFailed возвращается, когда платежный шлюз не выполнил возврат
	ErrRefundFailed = fmt.Errorf("%w: refund failed", domain.ErrPayment)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("refund_payment: internal error")
)
