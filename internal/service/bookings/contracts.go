package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// Calendar интерфейс календаря слотов
type Calendar interface {
	DaySlots(ctx context.Context, date time.Time) ([]domain.SlotState, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
