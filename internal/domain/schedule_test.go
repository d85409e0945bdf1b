package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBookableWeekday(t *testing.T) {
	allowed := map[time.Weekday]bool{
		time.Sunday:    false,
		time.Monday:    false,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
		time.Saturday:  true,
	}

	for day, want := range allowed {
		assert.Equal(t, want, IsBookableWeekday(day), day.String())
	}
}

func TestValidateServiceDate(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		london = time.UTC
	}
	// среда, 10 июля 2024, полдень
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"tuesday", time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC), nil},
		{"saturday", time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC), nil},
		{"sunday", time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC), ErrWeekdayNotAllowed},
		{"monday", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), ErrWeekdayNotAllowed},
		{"today", time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), ErrBookingForToday},
		{"zero", time.Time{}, ErrValidation},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceDate(tt.date, now, london)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateServiceDate_TodayInBusinessTimezone(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 23:30 UTC 15 июля = 00:30 16 июля по Лондону (BST)
	now := time.Date(2024, 7, 15, 23, 30, 0, 0, time.UTC)
	tuesday := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, ValidateServiceDate(tuesday, now, london), ErrBookingForToday)
	assert.NoError(t, ValidateServiceDate(tuesday, now, time.UTC))
}
