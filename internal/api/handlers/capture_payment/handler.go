package capture_payment

import (
	"io"
	"net/http"

	"github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers"
	capturePayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/capture_payment"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCaptured           = "Payment captured successfully"
	msgAlreadyCaptured    = "Payment already captured"

	maxPayloadBytes = 1 << 20
)

type Handler struct {
	useCase CapturePaymentUseCase
	logger  Logger
}

func NewHandler(useCase CapturePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/capture
// Тело запроса - результат capture заказа PayPal как есть
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /payments/capture - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &capturePayment.Request{Payload: payload})
	if err != nil {
		if handlers.StatusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("POST /payments/capture - Failed to capture payment: %v", err)
		} else {
			h.logger.Warn("POST /payments/capture - Capture rejected: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("POST /payments/capture - Payment captured: booking_id=%s, order_id=%s, already_captured=%t",
		result.Booking.ID, result.Capture.OrderID, result.AlreadyCaptured)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
