package check_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

type stubUseCase struct {
	req *checkAvailability.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &checkAvailability.Response{Available: true}, nil
}

const body = `{
	"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com",
	"selectedDate": "2024-07-16", "selectedTimeSlot": "10:00", "totalPrice": 50,
	"makeAndModel": "Ford Focus", "registrationNo": "AB12 CDE",
	"howDidYouHearAboutUs": "Google", "paymentMethod": "Cash"
}`

func serve(uc CheckAvailabilityUseCase, payload string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/check-availability", strings.NewReader(payload)))
	return rec
}

func TestHandle_Available(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available": true, "message": "Time slot is available"}`, rec.Body.String())

	require.NotNil(t, uc.req)
	assert.True(t, time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC).Equal(uc.req.Form.SelectedDate))
	assert.Equal(t, domain.TimeLabel("10:00"), uc.req.Form.SelectedTimeSlot)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		want    int
	}{
		{"malformed body", "{", nil, http.StatusBadRequest},
		{"bad date", strings.Replace(body, "2024-07-16", "16/07/2024", 1), nil, http.StatusBadRequest},
		{"sunday", body, domain.ErrWeekdayNotAllowed, http.StatusBadRequest},
		{"booked", body, checkAvailability.ErrSlotAlreadyBooked, http.StatusConflict},
		{"internal", body, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.payload)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":`)
		})
	}
}
