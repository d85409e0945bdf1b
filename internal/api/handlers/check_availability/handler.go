package check_availability

import (
	"net/http"

	"github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgAvailable          = "Time slot is available"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.BookingFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /bookings/check-availability - Invalid date: %q", req.SelectedDate)
		handlers.RespondDomainError(w, err)
		return
	}

	if _, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{Form: form}); err != nil {
		if handlers.StatusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("POST /bookings/check-availability - Failed to check slot: date=%s, time=%s, error=%v",
				req.SelectedDate, req.SelectedTimeSlot, err)
		} else {
			h.logger.Warn("POST /bookings/check-availability - Slot rejected: date=%s, time=%s, error=%v",
				req.SelectedDate, req.SelectedTimeSlot, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Available: true, Message: msgAvailable})
}
