package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain and use case error wraps exactly one of them,
// the transport layer maps the kind to a status code.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrPayment    = errors.New("payment error")
)

var (
	// ErrInvalidTimeLabel возвращается, когда время слота не входит в фиксированный список
	ErrInvalidTimeLabel = fmt.Errorf("%w: time slot is not one of the fixed labels", ErrValidation)

	// ErrBookingForToday возвращается при попытке забронировать сегодняшний день
	ErrBookingForToday = fmt.Errorf("%w: bookings for today are not allowed", ErrValidation)

	// ErrWeekdayNotAllowed возвращается для воскресенья и понедельника
	ErrWeekdayNotAllowed = fmt.Errorf("%w: bookings are only allowed from Tuesday to Saturday", ErrValidation)

	// ErrRequiredFieldsMissing возвращается, когда в форме нет обязательных полей
	ErrRequiredFieldsMissing = fmt.Errorf("%w: required fields are missing", ErrValidation)

	// ErrTotalPriceRequired возвращается, когда цена не указана или не положительна
	ErrTotalPriceRequired = fmt.Errorf("%w: total price is required", ErrValidation)

	// ErrInvalidPaymentMethod возвращается для способа оплаты вне PayPal/Cash
	ErrInvalidPaymentMethod = fmt.Errorf("%w: invalid payment method specified", ErrValidation)

	// ErrInvalidReferralSource возвращается для источника вне фиксированного списка
	ErrInvalidReferralSource = fmt.Errorf("%w: unknown referral source", ErrValidation)

	// ErrInvalidChannel возвращается для bookedBy вне admin/customer
	ErrInvalidChannel = fmt.Errorf("%w: bookedBy must be admin or customer", ErrValidation)

	// ErrSlotOccupied возвращается, когда слот уже занят бронированием или заблокирован
	ErrSlotOccupied = fmt.Errorf("%w: the selected time slot is not available", ErrConflict)

	// ErrConcurrentBooking возвращается, когда слот заняли параллельным запросом
	ErrConcurrentBooking = fmt.Errorf("%w: the selected time slot was just booked, please choose another", ErrConflict)

	// ErrSlotRecordNotFound возвращается, когда для времени нет записи в календаре
	ErrSlotRecordNotFound = fmt.Errorf("%w: slot not found on this date", ErrNotFound)

	// ErrSlotNotBooked возвращается при освобождении слота без bookedBy
	ErrSlotNotBooked = fmt.Errorf("%w: slot is not booked", ErrConflict)

	// ErrBookingNotPending возвращается при отмене уже обработанного платежа
	ErrBookingNotPending = fmt.Errorf("%w: this booking's payment has already been processed or cancelled", ErrConflict)

	// ErrCaptureNotCompleted возвращается, когда платёжный шлюз сообщил не COMPLETED
	ErrCaptureNotCompleted = fmt.Errorf("%w: payment capture failed", ErrPayment)

	// ErrMissingCaptureID возвращается для COMPLETED без идентификатора capture
	ErrMissingCaptureID = fmt.Errorf("%w: capture id is missing in capture details", ErrValidation)
)

// Kind returns the taxonomy sentinel wrapped by err, or nil for unclassified errors
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrPayment} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
