package refund_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCaptureID(ctx context.Context, captureID string) (*domain.Booking, error)
	UpdateRefund(ctx context.Context, booking *domain.Booking) error
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	RefundPayment(ctx context.Context, captureID string, amount float64, reason string) (*domain.RefundResult, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	SendRefund(ctx context.Context, booking *domain.Booking) error
	SendAdminRefundNotification(ctx context.Context, booking *domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
