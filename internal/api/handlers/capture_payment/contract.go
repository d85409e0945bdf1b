package capture_payment

import (
	"context"

	capturePayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/capture_payment"
)

type CapturePaymentUseCase interface {
	Execute(ctx context.Context, req *capturePayment.Request) (*capturePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
