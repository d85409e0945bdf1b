package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/calendar"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	calendar     Calendar
	gateway      PaymentGateway
	notifier     Notifier
	txManager    TransactionManager
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendar Calendar,
	gateway PaymentGateway,
	notifier Notifier,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendar:     calendar,
		gateway:      gateway,
		notifier:     notifier,
		txManager:    txManager,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Слот занимается в сериализуемой транзакции под блокировкой записи календаря,
// вызов платежного шлюза выполняется после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	form := &req.Form
	uc.logger.Info("CreateBooking: date=%s, time=%s, method=%s",
		form.SelectedDate.Format(domain.DateFormat), form.SelectedTimeSlot, form.PaymentMethod)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now, uc.location); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Собираем бронирование
	booking := domain.NewPendingBooking(uuid.NewString(), form)
	if booking.PaymentMethod == domain.PaymentMethodCash {
		invoice := cashInvoiceNumber(now)
		booking.PaypalOrderID = &invoice
	}

	// 4. Занимаем слот и сохраняем бронирование в одной транзакции
	var result *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Запись календаря на дату с блокировкой
		entry, err := uc.calendar.EnsureEntry(txCtx, booking.SelectedDate)
		if err != nil {
			return err
		}

		// 4.2. Слот не должен быть занят
		if uc.calendar.IsOccupied(entry, booking.SelectedTimeSlot) {
			return domain.ErrSlotOccupied
		}

		// 4.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		// 4.4. Занимаем слот
		if err := uc.calendar.Occupy(txCtx, entry, created.SelectedTimeSlot, created.ID); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, uc.mapTxError(booking, err)
	}

	uc.logger.Info("CreateBooking: booking id=%s created for slot %s %s",
		result.ID, result.SelectedDate.Format(domain.DateFormat), result.SelectedTimeSlot)

	// 5. Оплата
	if result.PaymentMethod == domain.PaymentMethodPayPal {
		return uc.startPayPalPayment(ctx, result)
	}

	uc.notify(ctx, result)

	return &Response{
		Booking:       result,
		InvoiceNumber: result.OrderID(),
	}, nil
}

// startPayPalPayment создает заказ в PayPal. Если заказ не создан или не сохранен, бронирование и слот освобождаются.
func (uc *UseCase) startPayPalPayment(ctx context.Context, booking *domain.Booking) (*Response, error) {
	order, err := uc.gateway.CreateOrder(ctx, booking.TotalPrice, domain.OrderMetadata{
		BookingID:        booking.ID,
		SelectedDate:     booking.SelectedDate,
		SelectedTimeSlot: booking.SelectedTimeSlot,
		MakeAndModel:     booking.MakeAndModel,
		RegistrationNo:   booking.RegistrationNo,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create PayPal order for booking id=%s: %v", booking.ID, err)
		uc.discard(ctx, booking)
		return nil, fmt.Errorf("%w: %v", ErrPaymentOrder, err)
	}

	if err := uc.bookingRepo.UpdateOrderID(ctx, booking.ID, order.OrderID); err != nil {
		uc.logger.Error("CreateBooking: failed to store order id=%s for booking id=%s: %v", order.OrderID, booking.ID, err)
		uc.discard(ctx, booking)
		return nil, fmt.Errorf("%w: failed to store order id: %v", ErrInternal, err)
	}
	orderID := order.OrderID
	booking.PaypalOrderID = &orderID

	uc.logger.Info("CreateBooking: PayPal order id=%s created for booking id=%s", order.OrderID, booking.ID)

	return &Response{
		Booking:       booking,
		PaypalOrderID: order.OrderID,
		ApprovalURL:   order.ApprovalURL,
	}, nil
}

// discard компенсирующая транзакция: удаляет бронирование и освобождает слот
func (uc *UseCase) discard(ctx context.Context, booking *domain.Booking) {
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			return err
		}
		entry, err := uc.calendar.FindEntry(txCtx, booking.SelectedDate)
		if err != nil {
			return err
		}
		return uc.calendar.Release(txCtx, entry, booking.SelectedTimeSlot)
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to discard booking id=%s: %v", booking.ID, err)
		return
	}
	uc.logger.Warn("CreateBooking: booking id=%s discarded, slot %s %s released",
		booking.ID, booking.SelectedDate.Format(domain.DateFormat), booking.SelectedTimeSlot)
}

// notify уведомления клиенту и администратору. Ошибки только логируются.
func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking) {
	details := domain.NewBookingDetails(booking, 0)

	if err := uc.notifier.SendConfirmation(ctx, booking, details); err != nil {
		uc.logger.Warn("CreateBooking: failed to send confirmation for booking id=%s: %v", booking.ID, err)
	}
	if err := uc.notifier.SendAdminNotification(ctx, booking, details); err != nil {
		uc.logger.Warn("CreateBooking: failed to send admin notification for booking id=%s: %v", booking.ID, err)
	}
}

func (uc *UseCase) mapTxError(booking *domain.Booking, err error) error {
	slot := booking.SelectedDate.Format(domain.DateFormat) + " " + booking.SelectedTimeSlot.String()

	switch {
	case errors.Is(err, txmanager.ErrSerializationFailure),
		errors.Is(err, bookingRepo.ErrConcurrentUpdate),
		errors.Is(err, bookingRepo.ErrDuplicateOrderID),
		errors.Is(err, calendar.ErrConcurrentUpdate):
		uc.logger.Warn("CreateBooking: concurrent booking of slot %s: %v", slot, err)
		return domain.ErrConcurrentBooking
	case domain.Kind(err) != nil:
		uc.logger.Warn("CreateBooking: slot %s rejected: %v", slot, err)
		return err
	default:
		uc.logger.Error("CreateBooking: failed to book slot %s: %v", slot, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
