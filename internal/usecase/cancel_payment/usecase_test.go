package cancel_payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/service/calendar"
	"github.com/m04kA/SMC-SlotPaymentService/internal/testutil"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

var tuesday = time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)

func newUseCase(store *testutil.Store) *UseCase {
	log := logger.NewNop()
	return NewUseCase(store.Bookings(), calendar.NewService(store.TimeSlots(), log), store.TxManager(), log)
}

// seed сохраняет бронирование с заказом ORDER1 и занятый им слот 10:00
func seed(store *testutil.Store, status domain.PaymentStatus) {
	form := testutil.Form(tuesday)
	form.PaymentMethod = domain.PaymentMethodPayPal
	booking := domain.NewPendingBooking("b1", &form)
	booking.PaymentStatus = status
	orderID := "ORDER1"
	booking.PaypalOrderID = &orderID
	store.PutBooking(booking)

	bookedBy := "b1"
	store.PutEntry(&domain.TimeSlotEntry{
		Date:    tuesday,
		Records: []domain.SlotRecord{{ID: 100, Time: "10:00", BookedBy: &bookedBy}},
	})
}

func TestExecute_CancelTwice(t *testing.T) {
	store := testutil.NewStore()
	seed(store, domain.PaymentPending)
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{OrderID: "ORDER1"})
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.Booking.ID)
	require.Len(t, resp.Slots, len(domain.TimeLabels))
	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotAvailable, slot.Status, slot.Time)
	}

	assert.Zero(t, store.BookingCount())
	entry, ok := store.Entry(tuesday)
	require.True(t, ok)
	assert.False(t, entry.IsOccupied("10:00"))

	_, err = uc.Execute(context.Background(), &Request{OrderID: "ORDER1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_CompletedBookingConflicts(t *testing.T) {
	store := testutil.NewStore()
	seed(store, domain.PaymentCompleted)

	_, err := newUseCase(store).Execute(context.Background(), &Request{OrderID: "ORDER1"})
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, store.BookingCount())
}

func TestExecute_MissingEntryRollsBack(t *testing.T) {
	store := testutil.NewStore()
	form := testutil.Form(tuesday)
	booking := domain.NewPendingBooking("b1", &form)
	orderID := "ORDER1"
	booking.PaypalOrderID = &orderID
	store.PutBooking(booking)

	_, err := newUseCase(store).Execute(context.Background(), &Request{OrderID: "ORDER1"})
	assert.ErrorIs(t, err, calendar.ErrEntryNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, ok := store.Booking("b1")
	assert.True(t, ok, "booking must survive the rolled back transaction")
}

func TestExecute_MissingSlotRecord(t *testing.T) {
	store := testutil.NewStore()
	seed(store, domain.PaymentPending)
	store.PutEntry(&domain.TimeSlotEntry{Date: tuesday})

	_, err := newUseCase(store).Execute(context.Background(), &Request{OrderID: "ORDER1"})
	assert.ErrorIs(t, err, domain.ErrSlotRecordNotFound)
	assert.Equal(t, 1, store.BookingCount())
}

func TestExecute_InvalidOrderID(t *testing.T) {
	uc := newUseCase(testutil.NewStore())

	for _, orderID := range []string{"", "  ", strings.Repeat("x", maxOrderIDLength+1)} {
		_, err := uc.Execute(context.Background(), &Request{OrderID: orderID})
		assert.ErrorIs(t, err, ErrInvalidOrderID)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}
