package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	createBooking "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCashCreated        = "Booking created. Please pay in cash on the day of the service."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.BookingFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %q", req.SelectedDate)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{Form: form})
	if err != nil {
		if handlers.StatusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.SelectedDate, req.SelectedTimeSlot, err)
		} else {
			h.logger.Warn("POST /bookings - Booking rejected: date=%s, time=%s, error=%v",
				req.SelectedDate, req.SelectedTimeSlot, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	if result.Booking.PaymentMethod == domain.PaymentMethodPayPal {
		h.logger.Info("POST /bookings - PayPal booking created: booking_id=%s, order_id=%s",
			result.Booking.ID, result.PaypalOrderID)
		handlers.RespondJSON(w, http.StatusOK, fromPayPal(result))
		return
	}

	h.logger.Info("POST /bookings - Cash booking created: booking_id=%s, invoice=%s",
		result.Booking.ID, result.InvoiceNumber)
	handlers.RespondJSON(w, http.StatusCreated, fromCash(result))
}
