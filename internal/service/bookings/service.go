package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
)

// Service сервис чтения бронирований и слотов
type Service struct {
	bookingRepo BookingRepository
	calendar    Calendar
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, calendar Calendar, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		calendar:    calendar,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: invalid booking id=%q", id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidBookingID, id)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetTimeSlots возвращает состояние всех слотов на дату
func (s *Service) GetTimeSlots(ctx context.Context, date time.Time) (*models.TimeSlotsResponse, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	day := domain.NormalizeDate(date)
	slots, err := s.calendar.DaySlots(ctx, day)
	if err != nil {
		s.logger.Error("GetTimeSlots: failed to get slots for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetTimeSlots - calendar error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(day, slots), nil
}
