package cancel_payment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers"
	cancelPayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/cancel_payment"
)

const msgCancelled = "Booking cancelled and time slot released"

type Handler struct {
	useCase CancelPaymentUseCase
	logger  Logger
}

func NewHandler(useCase CancelPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	result, err := h.useCase.Execute(r.Context(), &cancelPayment.Request{OrderID: orderID})
	if err != nil {
		if handlers.StatusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("POST /payments/{orderId}/cancel - Failed to cancel: order_id=%s, error=%v", orderID, err)
		} else {
			h.logger.Warn("POST /payments/{orderId}/cancel - Cancel rejected: order_id=%s, error=%v", orderID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /payments/{orderId}/cancel - Booking cancelled: booking_id=%s, order_id=%s",
		result.Booking.ID, orderID)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
