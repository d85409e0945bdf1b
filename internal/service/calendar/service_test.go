package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	timeslotRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

type fakeRepo struct {
	entries map[string]*domain.TimeSlotEntry
	saveErr error
	saved   []domain.SlotRecord
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: make(map[string]*domain.TimeSlotEntry)}
}

func (f *fakeRepo) FindByDate(_ context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	entry, ok := f.entries[date.Format(domain.DateFormat)]
	if !ok {
		return nil, timeslotRepo.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeRepo) EnsureByDate(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	key := date.Format(domain.DateFormat)
	if _, ok := f.entries[key]; !ok {
		f.nextID++
		entry := domain.NewTimeSlotEntry(date)
		entry.ID = f.nextID
		f.entries[key] = entry
	}
	return f.FindByDate(ctx, date)
}

func (f *fakeRepo) SaveRecord(_ context.Context, _ int64, record *domain.SlotRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *record)
	return nil
}

var tuesday = time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)

func TestService_FindEntryNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), logger.NewNop())

	_, err := svc.FindEntry(context.Background(), tuesday)

	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_OccupyAndRelease(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()

	entry, err := svc.EnsureEntry(ctx, tuesday)
	require.NoError(t, err)
	assert.Empty(t, entry.Records)
	assert.False(t, svc.IsOccupied(entry, "10:00"))

	require.NoError(t, svc.Occupy(ctx, entry, "10:00", "booking-1"))
	assert.True(t, svc.IsOccupied(entry, "10:00"))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "booking-1", *repo.saved[0].BookedBy)

	require.NoError(t, svc.Release(ctx, entry, "10:00"))
	assert.False(t, svc.IsOccupied(entry, "10:00"))
	require.Len(t, repo.saved, 2)
	assert.Nil(t, repo.saved[1].BookedBy)

	err = svc.Release(ctx, entry, "10:00")
	assert.ErrorIs(t, err, domain.ErrSlotNotBooked)
}

func TestService_OccupyInvalidLabel(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	entry, err := svc.EnsureEntry(context.Background(), tuesday)
	require.NoError(t, err)

	err = svc.Occupy(context.Background(), entry, "07:45", "booking-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.saved)
}

func TestService_SaveConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = timeslotRepo.ErrDuplicateRecord
	svc := NewService(repo, logger.NewNop())

	entry, err := svc.EnsureEntry(context.Background(), tuesday)
	require.NoError(t, err)

	err = svc.Occupy(context.Background(), entry, "10:00", "booking-1")
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestService_SaveInternalError(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("connection reset")
	svc := NewService(repo, logger.NewNop())

	entry, err := svc.EnsureEntry(context.Background(), tuesday)
	require.NoError(t, err)

	err = svc.Occupy(context.Background(), entry, "10:00", "booking-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_DaySlots(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()

	states, err := svc.DaySlots(ctx, tuesday)
	require.NoError(t, err)
	require.Len(t, states, len(domain.TimeLabels))
	for _, s := range states {
		assert.Equal(t, domain.SlotAvailable, s.Status)
	}

	entry, err := svc.EnsureEntry(ctx, tuesday)
	require.NoError(t, err)
	require.NoError(t, svc.Occupy(ctx, entry, "08:30", "booking-1"))

	states, err = svc.DaySlots(ctx, tuesday)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, states[0].Status)
	assert.Equal(t, "booking-1", *states[0].BookedBy)
}
