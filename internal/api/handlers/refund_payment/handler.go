package refund_payment

import (
	"net/http"

	"github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgRefunded           = "Refund processed successfully"
)

type Handler struct {
	useCase RefundPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RefundPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/refund
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/refund - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.StatusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("POST /payments/refund - Failed to refund: capture_id=%s, error=%v", req.CaptureID, err)
		} else {
			h.logger.Warn("POST /payments/refund - Refund rejected: capture_id=%s, error=%v", req.CaptureID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /payments/refund - Refund processed: booking_id=%s, refund_id=%s, amount=%.2f",
		result.Booking.ID, result.Refund.RefundID, req.RefundAmount)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
