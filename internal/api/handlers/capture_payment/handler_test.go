package capture_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	capturePayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/capture_payment"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

const payload = `{"id":"ORDER1","status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"id":"CAP1"}]}}]}`

type stubUseCase struct {
	payload []byte
	err     error
}

func (s *stubUseCase) Execute(_ context.Context, req *capturePayment.Request) (*capturePayment.Response, error) {
	s.payload = req.Payload
	if s.err != nil {
		return nil, s.err
	}
	captureID := "CAP1"
	return &capturePayment.Response{
		Booking: &domain.Booking{ID: "b1", PaymentStatus: domain.PaymentCompleted, CaptureID: &captureID},
		Capture: &domain.CaptureResult{OrderID: "ORDER1", Status: "COMPLETED", CaptureID: "CAP1"},
		Payload: req.Payload,
	}, nil
}

func serve(uc CapturePaymentUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/capture", strings.NewReader(body)))
	return rec
}

func TestHandle_Captured(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, string(uc.payload))

	var resp struct {
		Booking struct {
			PaymentStatus string `json:"paymentStatus"`
			CaptureID     string `json:"captureId"`
		} `json:"booking"`
		Capture         json.RawMessage `json:"capture"`
		AlreadyCaptured bool            `json:"alreadyCaptured"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "completed", resp.Booking.PaymentStatus)
	assert.Equal(t, "CAP1", resp.Booking.CaptureID)
	assert.JSONEq(t, payload, string(resp.Capture))
	assert.False(t, resp.AlreadyCaptured)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"declined", domain.ErrCaptureNotCompleted, http.StatusPaymentRequired},
		{"unknown order", capturePayment.ErrBookingNotFound, http.StatusNotFound},
		{"bad payload", capturePayment.ErrInvalidPayload, http.StatusBadRequest},
		{"internal", capturePayment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, payload)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
