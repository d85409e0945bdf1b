package capture_payment

import (
	"context"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	UpdatePayment(ctx context.Context, booking *domain.Booking) error
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CapturePayment(payload []byte) (*domain.CaptureResult, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking, details *domain.BookingDetails) error
	SendAdminNotification(ctx context.Context, booking *domain.Booking, details *domain.BookingDetails) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
