// Package testutil содержит in-memory реализации хранилищ и внешних зависимостей для тестов use case
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/timeslot"
)

// Store in-memory хранилище бронирований и календаря.
// Транзакции выполняются строго последовательно и откатываются по снимку при ошибке.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	bookings map[string]domain.Booking
	entries  map[string]*domain.TimeSlotEntry
	nextID   int64

	failures map[string]error
}

func NewStore() *Store {
	return &Store{
		bookings: make(map[string]domain.Booking),
		entries:  make(map[string]*domain.TimeSlotEntry),
		failures: make(map[string]error),
	}
}

// Fail заставляет операцию op (например "Bookings.Create") вернуть err
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{s: s}
}

func (s *Store) TimeSlots() *TimeSlotRepository {
	return &TimeSlotRepository{s: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{s: s}
}

// BookingCount количество сохраненных бронирований
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// Booking возвращает копию бронирования
func (s *Store) Booking(id string) (*domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

// Entry возвращает копию записи календаря
func (s *Store) Entry(date time.Time) (*domain.TimeSlotEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[dayKey(date)]
	if !ok {
		return nil, false
	}
	return copyEntry(e), true
}

// PutEntry сохраняет запись календаря как есть (для подготовки данных)
func (s *Store) PutEntry(entry *domain.TimeSlotEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == 0 {
		s.nextID++
		entry.ID = s.nextID
	}
	s.entries[dayKey(entry.Date)] = copyEntry(entry)
}

// PutBooking сохраняет бронирование как есть (для подготовки данных)
func (s *Store) PutBooking(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = *b
}

type snapshot struct {
	bookings map[string]domain.Booking
	entries  map[string]*domain.TimeSlotEntry
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		bookings: make(map[string]domain.Booking, len(s.bookings)),
		entries:  make(map[string]*domain.TimeSlotEntry, len(s.entries)),
	}
	for k, v := range s.bookings {
		snap.bookings[k] = v
	}
	for k, v := range s.entries {
		snap.entries[k] = copyEntry(v)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = snap.bookings
	s.entries = snap.entries
}

func dayKey(date time.Time) string {
	return domain.NormalizeDate(date).Format(domain.DateFormat)
}

func copyEntry(e *domain.TimeSlotEntry) *domain.TimeSlotEntry {
	c := *e
	c.Records = make([]domain.SlotRecord, len(e.Records))
	copy(c.Records, e.Records)
	return &c
}

type txKey struct{}

// TxManager последовательные транзакции поверх Store
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	snap := m.s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

// BookingRepository in-memory репозиторий бронирований
type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Bookings.Create"); err != nil {
		return nil, err
	}
	if _, ok := r.s.bookings[b.ID]; ok {
		return nil, bookingRepo.ErrDuplicateOrderID
	}
	if orderID := b.OrderID(); orderID != "" {
		for _, existing := range r.s.bookings {
			if existing.OrderID() == orderID {
				return nil, bookingRepo.ErrDuplicateOrderID
			}
		}
	}

	b.RefreshDerived()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.s.bookings[b.ID] = *b
	return b, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	return r.find(func(b *domain.Booking) bool { return b.ID == id })
}

func (r *BookingRepository) GetByOrderID(_ context.Context, orderID string) (*domain.Booking, error) {
	return r.find(func(b *domain.Booking) bool { return b.OrderID() == orderID })
}

func (r *BookingRepository) GetByCaptureID(_ context.Context, captureID string) (*domain.Booking, error) {
	return r.find(func(b *domain.Booking) bool { return b.CaptureID != nil && *b.CaptureID == captureID })
}

func (r *BookingRepository) find(match func(b *domain.Booking) bool) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if match(&b) {
			found := b
			return &found, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *BookingRepository) ExistsCompleted(_ context.Context, date time.Time, label domain.TimeLabel) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Bookings.ExistsCompleted"); err != nil {
		return false, err
	}
	day := domain.NormalizeDate(date)
	for _, b := range r.s.bookings {
		if b.SelectedDate.Equal(day) && b.SelectedTimeSlot == label && b.IsCompleted() {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) UpdateOrderID(_ context.Context, id string, orderID string) error {
	return r.update(id, "Bookings.UpdateOrderID", func(b *domain.Booking) {
		b.PaypalOrderID = &orderID
	})
}

func (r *BookingRepository) UpdatePayment(_ context.Context, booking *domain.Booking) error {
	return r.update(booking.ID, "Bookings.UpdatePayment", func(b *domain.Booking) {
		b.PaymentStatus = booking.PaymentStatus
		b.CaptureID = booking.CaptureID
	})
}

func (r *BookingRepository) UpdateRefund(_ context.Context, booking *domain.Booking) error {
	return r.update(booking.ID, "Bookings.UpdateRefund", func(b *domain.Booking) {
		b.RefundID = booking.RefundID
		b.RefundStatus = booking.RefundStatus
		b.RefundAmount = booking.RefundAmount
		b.RefundReason = booking.RefundReason
		b.RefundDate = booking.RefundDate
	})
}

func (r *BookingRepository) update(id string, op string, apply func(b *domain.Booking)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure(op); err != nil {
		return err
	}
	b, ok := r.s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	apply(&b)
	b.RefreshDerived()
	b.UpdatedAt = time.Now().UTC()
	r.s.bookings[id] = b
	return nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Bookings.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.s.bookings, id)
	return nil
}

// TimeSlotRepository in-memory репозиторий календаря
type TimeSlotRepository struct {
	s *Store
}

func (r *TimeSlotRepository) FindByDate(_ context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry, ok := r.s.entries[dayKey(date)]
	if !ok {
		return nil, timeslotRepo.ErrEntryNotFound
	}
	return copyEntry(entry), nil
}

func (r *TimeSlotRepository) EnsureByDate(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	r.s.mu.Lock()
	if err := r.s.failure("TimeSlots.EnsureByDate"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	key := dayKey(date)
	if _, ok := r.s.entries[key]; !ok {
		r.s.nextID++
		entry := domain.NewTimeSlotEntry(date)
		entry.ID = r.s.nextID
		r.s.entries[key] = entry
	}
	r.s.mu.Unlock()

	return r.FindByDate(ctx, date)
}

func (r *TimeSlotRepository) SaveRecord(_ context.Context, entryID int64, record *domain.SlotRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("TimeSlots.SaveRecord"); err != nil {
		return err
	}

	for _, entry := range r.s.entries {
		if entry.ID != entryID {
			continue
		}
		for i := range entry.Records {
			if entry.Records[i].Time == record.Time {
				record.ID = entry.Records[i].ID
				entry.Records[i] = *record
				return nil
			}
		}
		r.s.nextID++
		record.ID = r.s.nextID
		entry.Records = append(entry.Records, *record)
		return nil
	}
	return timeslotRepo.ErrEntryNotFound
}
