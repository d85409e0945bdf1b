package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// Sender публикует события о бронированиях. Письма формирует и отправляет потребитель событий.
type Sender struct {
	publisher Publisher
	timeout   time.Duration
	metrics   Metrics
	now       func() time.Time
	log       Logger
}

// NewSender создает новый экземпляр отправителя уведомлений
func NewSender(publisher Publisher, timeout time.Duration, log Logger) *Sender {
	return &Sender{
		publisher: publisher,
		timeout:   timeout,
		now:       time.Now,
		log:       log,
	}
}

// WithMetrics включает счетчики опубликованных событий
func (s *Sender) WithMetrics(m Metrics) *Sender {
	s.metrics = m
	return s
}

// SendConfirmation уведомление клиенту о бронировании
func (s *Sender) SendConfirmation(ctx context.Context, booking *domain.Booking, details *domain.BookingDetails) error {
	return s.publish(ctx, Event{
		Event:     EventBookingConfirmed,
		Recipient: booking.Email,
		Booking:   newBookingPayload(booking),
		Details:   newDetailsPayload(details),
	})
}

// SendAdminNotification уведомление администратору о новом бронировании
func (s *Sender) SendAdminNotification(ctx context.Context, booking *domain.Booking, details *domain.BookingDetails) error {
	return s.publish(ctx, Event{
		Event:     EventAdminNotice,
		Recipient: RecipientAdmin,
		Booking:   newBookingPayload(booking),
		Details:   newDetailsPayload(details),
	})
}

// SendRefund уведомление клиенту о возврате
func (s *Sender) SendRefund(ctx context.Context, booking *domain.Booking) error {
	return s.publish(ctx, Event{
		Event:     EventBookingRefunded,
		Recipient: booking.Email,
		Booking:   newBookingPayload(booking),
		Refund:    newRefundPayload(booking),
	})
}

// SendAdminRefundNotification уведомление администратору о возврате
func (s *Sender) SendAdminRefundNotification(ctx context.Context, booking *domain.Booking) error {
	return s.publish(ctx, Event{
		Event:     EventAdminRefundNotice,
		Recipient: RecipientAdmin,
		Booking:   newBookingPayload(booking),
		Refund:    newRefundPayload(booking),
	})
}

func (s *Sender) publish(ctx context.Context, event Event) error {
	event.Version = EventVersion
	event.OccurredAt = s.now().UTC()

	// Событие публикуется после коммита, отмена запроса клиентом не должна его терять
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err := s.publisher.PublishJSON(pubCtx, event.Event, event)
	if s.metrics != nil {
		s.metrics.ObserveNotification(event.Event, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s booking_id=%s: %v", ErrPublish, event.Event, event.Booking.ID, err)
	}

	s.log.Info("Notification published: event=%s, booking_id=%s", event.Event, event.Booking.ID)
	return nil
}
