package get_time_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
)

type SlotService interface {
	GetTimeSlots(ctx context.Context, date time.Time) (*models.TimeSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
