package cancel_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
)

// UseCase use case для отмены неоплаченного бронирования
type UseCase struct {
	bookingRepo BookingRepository
	calendar    Calendar
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, calendar Calendar, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		calendar:    calendar,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute удаляет бронирование и освобождает слот в одной транзакции.
// Если запись календаря или слота не найдена, транзакция откатывается целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelPayment: validation failed: %v", err)
		return nil, err
	}
	orderID := strings.TrimSpace(req.OrderID)

	// 2. Удаляем бронирование и освобождаем слот
	var resp *Response
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование по заказу с блокировкой
		booking, err := uc.bookingRepo.GetByOrderID(txCtx, orderID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: order %s", ErrBookingNotFound, orderID)
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отменить можно только неоплаченное бронирование
		if err := booking.EnsureCancellable(); err != nil {
			return err
		}

		// 2.3. Удаляем бронирование
		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: order %s", ErrBookingNotFound, orderID)
			}
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		// 2.4. Освобождаем слот
		entry, err := uc.calendar.FindEntry(txCtx, booking.SelectedDate)
		if err != nil {
			return err
		}
		if err := uc.calendar.Release(txCtx, entry, booking.SelectedTimeSlot); err != nil {
			return err
		}

		resp = &Response{Booking: booking, Slots: entry.DayStates()}
		return nil
	})
	if err != nil {
		if domain.Kind(err) != nil {
			uc.logger.Warn("CancelPayment: order %s rejected: %v", orderID, err)
			return nil, err
		}
		uc.logger.Error("CancelPayment: order %s failed: %v", orderID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelPayment: booking id=%s deleted, slot %s %s released",
		resp.Booking.ID, resp.Booking.SelectedDate.Format(domain.DateFormat), resp.Booking.SelectedTimeSlot)

	return resp, nil
}
