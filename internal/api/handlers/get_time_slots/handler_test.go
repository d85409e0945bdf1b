package get_time_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

type stubService struct {
	date time.Time
}

func (s *stubService) GetTimeSlots(_ context.Context, date time.Time) (*models.TimeSlotsResponse, error) {
	s.date = date
	return models.FromDomainSlots(date, domain.NewTimeSlotEntry(date).DayStates()), nil
}

func serve(svc SlotService, date string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/time-slots/{date}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time-slots/"+date, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "2024-07-16")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC).Equal(svc.date))

	var resp models.TimeSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2024-07-16", resp.Date)
	assert.Len(t, resp.Slots, len(domain.TimeLabels))
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := serve(&stubService{}, "16-07-2024")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid date format. Please use YYYY-MM-DD.")
}
