package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// UseCase проверка, что слот можно забронировать. Ничего не изменяет.
type UseCase struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы и даты
	if err := validateRequest(req, uc.timeProvider.Now(), uc.location); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	date := domain.NormalizeDate(req.Form.SelectedDate)
	label := req.Form.SelectedTimeSlot

	// 2. Ищем оплаченное бронирование на этот слот
	exists, err := uc.bookingRepo.ExistsCompleted(ctx, date, label)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check slot %s %s: %v", date.Format(domain.DateFormat), label, err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}

	if exists {
		uc.logger.Info("CheckAvailability: slot %s %s is already booked", date.Format(domain.DateFormat), label)
		return nil, ErrSlotAlreadyBooked
	}

	return &Response{Available: true}, nil
}
