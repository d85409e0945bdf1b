package refund_payment

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
	refundPayment "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/refund_payment"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

type stubUseCase struct {
	req *refundPayment.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *refundPayment.Request) (*refundPayment.Response, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	booking := &domain.Booking{ID: "b1"}
	booking.ApplyRefund("REF1", req.Amount, req.Reason, booking.CreatedAt)
	return &refundPayment.Response{
		Booking: booking,
		Refund:  &domain.RefundResult{RefundID: "REF1", Status: "COMPLETED"},
	}, nil
}

func serve(uc RefundPaymentUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/refund", strings.NewReader(body)))
	return rec
}

func TestHandle_Refunded(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, `{"captureId": "CAP1", "refundAmount": 20, "refundReason": "customer request"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.req)
	assert.Equal(t, "CAP1", uc.req.CaptureID)
	assert.Equal(t, 20.0, uc.req.Amount)
	assert.Equal(t, "customer request", uc.req.Reason)

	var resp RefundResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "REF1", resp.RefundID)
	assert.Equal(t, "completed", resp.Booking.RefundStatus)
	require.NotNil(t, resp.Booking.RefundAmount)
	assert.Equal(t, 20.0, *resp.Booking.RefundAmount)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"malformed body", "{", nil, http.StatusBadRequest},
		{"invalid amount", `{"captureId": "CAP1"}`, refundPayment.ErrInvalidAmount, http.StatusBadRequest},
		{"unknown capture", `{"captureId": "CAP2", "refundAmount": 1}`, refundPayment.ErrBookingNotFound, http.StatusNotFound},
		{"gateway", `{"captureId": "CAP1", "refundAmount": 1}`, refundPayment.ErrRefundFailed, http.StatusPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
