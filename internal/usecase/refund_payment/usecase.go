package refund_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
)

// UseCase use case для возврата оплаты
type UseCase struct {
	bookingRepo  BookingRepository
	gateway      PaymentGateway
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, gateway PaymentGateway, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет возврат. Бронирование ищется до обращения к шлюзу,
// чтобы деньги не возвращались по неизвестному capture.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RefundPayment: validation failed: %v", err)
		return nil, err
	}
	captureID := strings.TrimSpace(req.CaptureID)
	reason := strings.TrimSpace(req.Reason)

	// 2. Бронирование по capture
	booking, err := uc.bookingRepo.GetByCaptureID(ctx, captureID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RefundPayment: no booking for capture %s", captureID)
			return nil, fmt.Errorf("%w: capture %s", ErrBookingNotFound, captureID)
		}
		uc.logger.Error("RefundPayment: failed to get booking by capture %s: %v", captureID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Возврат в платежном шлюзе
	var refund *domain.RefundResult
	refund, err = uc.gateway.RefundPayment(ctx, captureID, req.Amount, reason)
	if err != nil {
		uc.logger.Error("RefundPayment: gateway refund of capture %s failed: %v", captureID, err)
		return nil, fmt.Errorf("%w: %v", ErrRefundFailed, err)
	}

	// 4. Сохраняем данные возврата
	booking.ApplyRefund(refund.RefundID, req.Amount, reason, uc.timeProvider.Now().UTC())
	if err := uc.bookingRepo.UpdateRefund(ctx, booking); err != nil {
		uc.logger.Error("RefundPayment: refund %s done but booking id=%s not updated: %v", refund.RefundID, booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update refund: %v", ErrInternal, err)
	}

	uc.logger.Info("RefundPayment: booking id=%s refunded %.2f, refund=%s", booking.ID, req.Amount, refund.RefundID)

	// 5. Уведомления клиенту и администратору
	if err := uc.notifier.SendRefund(ctx, booking); err != nil {
		uc.logger.Warn("RefundPayment: failed to send refund notification for booking id=%s: %v", booking.ID, err)
	}
	if err := uc.notifier.SendAdminRefundNotification(ctx, booking); err != nil {
		uc.logger.Warn("RefundPayment: failed to send admin refund notification for booking id=%s: %v", booking.ID, err)
	}

	return &Response{Booking: booking, Refund: refund}, nil
}
