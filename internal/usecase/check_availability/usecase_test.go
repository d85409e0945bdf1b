package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/testutil"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

// 2024-07-15 понедельник
var now = time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)

func newUseCase(store *testutil.Store) *UseCase {
	uc := NewUseCase(store.Bookings(), time.UTC, logger.NewNop())
	uc.timeProvider = &testutil.Clock{T: now}
	return uc
}

func TestExecute_Available(t *testing.T) {
	uc := newUseCase(testutil.NewStore())

	resp, err := uc.Execute(context.Background(), &Request{Form: testutil.Form(time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CompletedBookingConflicts(t *testing.T) {
	store := testutil.NewStore()
	date := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)
	form := testutil.Form(date)
	booking := domain.NewPendingBooking("b1", &form)
	booking.PaymentStatus = domain.PaymentCompleted
	store.PutBooking(booking)

	_, err := newUseCase(store).Execute(context.Background(), &Request{Form: form})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestExecute_PendingBookingDoesNotConflict(t *testing.T) {
	store := testutil.NewStore()
	date := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)
	form := testutil.Form(date)
	store.PutBooking(domain.NewPendingBooking("b1", &form))

	resp, err := newUseCase(store).Execute(context.Background(), &Request{Form: form})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_DateRules(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want error
	}{
		{"sunday", time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC), domain.ErrWeekdayNotAllowed},
		{"monday", time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC), domain.ErrWeekdayNotAllowed},
		{"today", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), domain.ErrBookingForToday},
		{"saturday", time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(testutil.NewStore())
			_, err := uc.Execute(context.Background(), &Request{Form: testutil.Form(tt.date)})
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExecute_MissingFields(t *testing.T) {
	form := testutil.Form(time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC))
	form.Email = ""

	_, err := newUseCase(testutil.NewStore()).Execute(context.Background(), &Request{Form: form})
	assert.ErrorIs(t, err, domain.ErrRequiredFieldsMissing)
}

func TestExecute_RepositoryError(t *testing.T) {
	store := testutil.NewStore()
	store.Fail("Bookings.ExistsCompleted", errors.New("db down"))

	_, err := newUseCase(store).Execute(context.Background(), &Request{Form: testutil.Form(time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC))})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, domain.Kind(err))
}
