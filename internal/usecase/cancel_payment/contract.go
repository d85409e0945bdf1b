package cancel_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Calendar интерфейс календаря слотов
type Calendar interface {
	FindEntry(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error)
	Release(ctx context.Context, entry *domain.TimeSlotEntry, label domain.TimeLabel) error
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
