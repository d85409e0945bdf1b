package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateOrderID(ctx context.Context, id string, orderID string) error
	Delete(ctx context.Context, id string) error
}

// Calendar интерфейс календаря слотов
type Calendar interface {
	EnsureEntry(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error)
	FindEntry(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error)
	IsOccupied(entry *domain.TimeSlotEntry, label domain.TimeLabel) bool
	Occupy(ctx context.Context, entry *domain.TimeSlotEntry, label domain.TimeLabel, bookingID string) error
	Release(ctx context.Context, entry *domain.TimeSlotEntry, label domain.TimeLabel) error
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, meta domain.OrderMetadata) (*domain.PaymentOrder, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking, details *domain.BookingDetails) error
	SendAdminNotification(ctx context.Context, booking *domain.Booking, details *domain.BookingDetails) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
