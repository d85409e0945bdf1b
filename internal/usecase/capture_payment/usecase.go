package capture_payment

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
)

// UseCase use case для подтверждения оплаты PayPal
type UseCase struct {
	bookingRepo BookingRepository
	gateway     PaymentGateway
	notifier    Notifier
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute применяет результат capture к бронированию.
// Повторный вызов для оплаченного бронирования возвращает его без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем callback шлюза
	if len(bytes.TrimSpace(req.Payload)) == 0 {
		return nil, ErrEmptyPayload
	}

	capture, err := uc.gateway.CapturePayment(req.Payload)
	if err != nil {
		uc.logger.Warn("CapturePayment: invalid capture payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	uc.logger.Info("CapturePayment: order=%s, status=%s, capture=%s", capture.OrderID, capture.Status, capture.CaptureID)

	// 2. Применяем capture под блокировкой бронирования
	var (
		booking *domain.Booking
		changed bool
	)
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		found, err := uc.bookingRepo.GetByOrderID(txCtx, capture.OrderID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: order %s", ErrBookingNotFound, capture.OrderID)
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		changed, err = found.ApplyCapture(capture.Status, capture.CaptureID)
		if err != nil {
			return err
		}

		if changed {
			if err := uc.bookingRepo.UpdatePayment(txCtx, found); err != nil {
				return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
			}
		}

		booking = found
		return nil
	})
	if err != nil {
		if domain.Kind(err) != nil {
			uc.logger.Warn("CapturePayment: order %s rejected: %v", capture.OrderID, err)
		} else {
			uc.logger.Error("CapturePayment: order %s failed: %v", capture.OrderID, err)
		}
		return nil, err
	}

	resp := &Response{
		Booking:         booking,
		Capture:         capture,
		Payload:         append([]byte(nil), req.Payload...),
		AlreadyCaptured: !changed,
	}

	if !changed {
		uc.logger.Info("CapturePayment: booking id=%s already completed", booking.ID)
		return resp, nil
	}

	uc.logger.Info("CapturePayment: booking id=%s completed, capture=%s", booking.ID, capture.CaptureID)

	// 3. Уведомления клиенту и администратору
	details := domain.NewBookingDetails(booking, capture.Amount)
	if err := uc.notifier.SendConfirmation(ctx, booking, details); err != nil {
		uc.logger.Warn("CapturePayment: failed to send confirmation for booking id=%s: %v", booking.ID, err)
	}
	if err := uc.notifier.SendAdminNotification(ctx, booking, details); err != nil {
		uc.logger.Warn("CapturePayment: failed to send admin notification for booking id=%s: %v", booking.ID, err)
	}

	return resp, nil
}
