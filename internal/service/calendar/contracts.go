package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория календаря
type TimeSlotRepository interface {
	FindByDate(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error)
	EnsureByDate(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error)
	SaveRecord(ctx context.Context, entryID int64, record *domain.SlotRecord) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
