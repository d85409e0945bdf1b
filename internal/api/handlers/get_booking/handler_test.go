package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings"
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) GetByID(_ context.Context, id string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, PaymentStatus: "pending"}, nil
}

func serve(svc BookingService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"found", nil, http.StatusOK},
		{"invalid id", bookings.ErrInvalidBookingID, http.StatusBadRequest},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, "b1")
			assert.Equal(t, tt.want, rec.Code)
			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"id":"b1"`)
			}
		})
	}
}
