package domain

import (
	"fmt"
	"time"
)

// IsBookableWeekday возвращает false для воскресенья и понедельника.
// Приём работает со вторника по субботу.
func IsBookableWeekday(day time.Weekday) bool {
	return day != time.Sunday && day != time.Monday
}

// ValidateServiceDate проверяет дату услуги: не сегодня (в часовом поясе мастерской)
// и рабочий день недели. date - календарный день в полночь UTC.
func ValidateServiceDate(date time.Time, now time.Time, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	if date.IsZero() {
		return fmt.Errorf("%w: selectedDate is required", ErrValidation)
	}

	day := NormalizeDate(date)
	today := NormalizeDate(now.In(loc))
	if day.Equal(today) {
		return ErrBookingForToday
	}

	if !IsBookableWeekday(day.Weekday()) {
		return fmt.Errorf("%w: %s is %s", ErrWeekdayNotAllowed, day.Format(DateFormat), day.Weekday())
	}

	return nil
}
