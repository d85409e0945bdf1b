package cancel_payment

import (
	"context"

	cancelPayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/cancel_payment"
)

type CancelPaymentUseCase interface {
	Execute(ctx context.Context, req *cancelPayment.Request) (*cancelPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
