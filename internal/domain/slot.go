package domain

import (
	"fmt"
	"time"
)

// TimeLabel is one of the fixed half-hour slot labels, e.g. "10:00"
type TimeLabel string

// IsValid returns true if the label is one of TimeLabels
func (l TimeLabel) IsValid() bool {
	for _, label := range TimeLabels {
		if label == l {
			return true
		}
	}
	return false
}

// String returns the label as is
func (l TimeLabel) String() string {
	return string(l)
}

// ParseTimeLabel валидирует строку и возвращает TimeLabel
func ParseTimeLabel(s string) (TimeLabel, error) {
	label := TimeLabel(s)
	if !label.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
	}
	return label, nil
}

// SlotStatus represents occupancy of a single slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "Available"
	SlotBooked    SlotStatus = "Booked"
	SlotBlocked   SlotStatus = "Blocked"
)

// SlotRecord occupancy record of one time label inside a calendar day.
// BlockedBy is reserved for staff blocking and is never written by this service.
type SlotRecord struct {
	ID        int64
	Time      TimeLabel
	BookedBy  *string // ID бронирования (слабая ссылка, только для поиска и отображения)
	BlockedBy *string
}

// Status returns Blocked if BlockedBy is set, else Booked if BookedBy is set, else Available
func (r *SlotRecord) Status() SlotStatus {
	if r.BlockedBy != nil && *r.BlockedBy != "" {
		return SlotBlocked
	}
	if r.BookedBy != nil && *r.BookedBy != "" {
		return SlotBooked
	}
	return SlotAvailable
}

// IsOccupied returns true if the slot is booked or blocked
func (r *SlotRecord) IsOccupied() bool {
	return r.Status() != SlotAvailable
}

// SlotState view of a label for the day slot map
type SlotState struct {
	Time      TimeLabel
	Status    SlotStatus
	BookedBy  *string
	BlockedBy *string
}

// TimeSlotEntry calendar entry of one day. Labels without a record are implicitly available.
type TimeSlotEntry struct {
	ID        int64 // 0 = ещё не сохранена
	Date      time.Time
	Records   []SlotRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimeSlotEntry создает пустую запись календаря на дату
func NewTimeSlotEntry(date time.Time) *TimeSlotEntry {
	return &TimeSlotEntry{
		Date:    NormalizeDate(date),
		Records: make([]SlotRecord, 0),
	}
}

// Record returns the occupancy record for the label
func (e *TimeSlotEntry) Record(label TimeLabel) (*SlotRecord, bool) {
	for i := range e.Records {
		if e.Records[i].Time == label {
			return &e.Records[i], true
		}
	}
	return nil, false
}

// IsOccupied returns true if the label has a record with bookedBy or blockedBy
func (e *TimeSlotEntry) IsOccupied(label TimeLabel) bool {
	record, ok := e.Record(label)
	if !ok {
		return false
	}
	return record.IsOccupied()
}

// Occupy sets bookedBy of the label, inserting the record if needed.
// Returns the record that has to be persisted.
func (e *TimeSlotEntry) Occupy(label TimeLabel, bookingID string) (*SlotRecord, error) {
	if !label.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}

	id := bookingID
	if record, ok := e.Record(label); ok {
		record.BookedBy = &id
		return record, nil
	}

	e.Records = append(e.Records, SlotRecord{Time: label, BookedBy: &id})
	return &e.Records[len(e.Records)-1], nil
}

// Release clears bookedBy of the label
func (e *TimeSlotEntry) Release(label TimeLabel) (*SlotRecord, error) {
	record, ok := e.Record(label)
	if !ok {
		return nil, fmt.Errorf("%w: slot %s", ErrSlotRecordNotFound, label)
	}
	if record.BookedBy == nil || *record.BookedBy == "" {
		return nil, fmt.Errorf("%w: slot %s", ErrSlotNotBooked, label)
	}

	record.BookedBy = nil
	return record, nil
}

// TouchedStates returns states of the labels that have a record, in record order
func (e *TimeSlotEntry) TouchedStates() []SlotState {
	states := make([]SlotState, 0, len(e.Records))
	for i := range e.Records {
		states = append(states, stateOf(&e.Records[i]))
	}
	return states
}

// DayStates returns states of all fixed labels of the day
func (e *TimeSlotEntry) DayStates() []SlotState {
	states := make([]SlotState, 0, len(TimeLabels))
	for _, label := range TimeLabels {
		if record, ok := e.Record(label); ok {
			states = append(states, stateOf(record))
			continue
		}
		states = append(states, SlotState{Time: label, Status: SlotAvailable})
	}
	return states
}

func stateOf(r *SlotRecord) SlotState {
	state := SlotState{Time: r.Time, Status: r.Status()}
	switch state.Status {
	case SlotBlocked:
		state.BlockedBy = r.BlockedBy
	case SlotBooked:
		state.BookedBy = r.BookedBy
	}
	return state
}

// NormalizeDate returns the calendar day of t at midnight UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
