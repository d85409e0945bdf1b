package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	timeslotRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/timeslot"
)

// Service календарь слотов: единственный источник правды о занятости (дата, время)
type Service struct {
	repo   TimeSlotRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(repo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// FindEntry возвращает запись календаря на дату или ErrEntryNotFound.
// В транзакции запись блокируется.
func (s *Service) FindEntry(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	entry, err := s.repo.FindByDate(ctx, domain.NormalizeDate(date))
	if err != nil {
		return nil, s.mapError("FindEntry", date, err)
	}
	return entry, nil
}

// EnsureEntry возвращает существующую запись календаря или создает пустую
func (s *Service) EnsureEntry(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	entry, err := s.repo.EnsureByDate(ctx, domain.NormalizeDate(date))
	if err != nil {
		return nil, s.mapError("EnsureEntry", date, err)
	}
	return entry, nil
}

// IsOccupied возвращает true, если слот забронирован или заблокирован
func (s *Service) IsOccupied(entry *domain.TimeSlotEntry, label domain.TimeLabel) bool {
	return entry.IsOccupied(label)
}

// Occupy записывает бронирование в слот и сохраняет запись
func (s *Service) Occupy(ctx context.Context, entry *domain.TimeSlotEntry, label domain.TimeLabel, bookingID string) error {
	record, err := entry.Occupy(label, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.SaveRecord(ctx, entry.ID, record); err != nil {
		return s.mapError("Occupy", entry.Date, err)
	}

	s.logger.Info("Occupy: slot %s %s booked by %s", entry.Date.Format(domain.DateFormat), label, bookingID)
	return nil
}

// Release освобождает слот и сохраняет запись
func (s *Service) Release(ctx context.Context, entry *domain.TimeSlotEntry, label domain.TimeLabel) error {
	record, err := entry.Release(label)
	if err != nil {
		return err
	}

	if err := s.repo.SaveRecord(ctx, entry.ID, record); err != nil {
		return s.mapError("Release", entry.Date, err)
	}

	s.logger.Info("Release: slot %s %s released", entry.Date.Format(domain.DateFormat), label)
	return nil
}

// DaySlots возвращает состояние всех 20 слотов дня. День без записи полностью свободен.
func (s *Service) DaySlots(ctx context.Context, date time.Time) ([]domain.SlotState, error) {
	entry, err := s.FindEntry(ctx, date)
	if errors.Is(err, ErrEntryNotFound) {
		return domain.NewTimeSlotEntry(date).DayStates(), nil
	}
	if err != nil {
		return nil, err
	}
	return entry.DayStates(), nil
}

func (s *Service) mapError(op string, date time.Time, err error) error {
	day := date.Format(domain.DateFormat)
	switch {
	case errors.Is(err, timeslotRepo.ErrEntryNotFound):
		return fmt.Errorf("%w: %s", ErrEntryNotFound, day)
	case errors.Is(err, timeslotRepo.ErrConcurrentUpdate), errors.Is(err, timeslotRepo.ErrDuplicateRecord):
		s.logger.Warn("%s: concurrent update on %s: %v", op, day, err)
		return fmt.Errorf("%w: %s", ErrConcurrentUpdate, day)
	default:
		s.logger.Error("%s: repository error on %s: %v", op, day, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
