package get_time_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(raw)
	if err != nil {
		h.logger.Warn("GET /time-slots/{date} - Invalid date: %q", raw)
		handlers.RespondDomainError(w, err)
		return
	}

	slots, err := h.service.GetTimeSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /time-slots/{date} - Failed to get slots: date=%s, error=%v", raw, err)
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}
