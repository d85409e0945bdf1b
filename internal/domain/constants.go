package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business constants
const (
	SlotDurationMinutes   = 30
	CashOrderPrefix       = "CASH-ORD"
	CashOrderRandomBound  = 1000
	DefaultTimezone       = "Europe/London"
	MaxRefundReasonLength = 500
	MaxNameLength         = 100
)

// TimeLabels фиксированный список слотов рабочего дня (08:30 - 18:00, шаг 30 минут)
var TimeLabels = []TimeLabel{
	"08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30", "13:00",
	"13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00",
}

// ReferralSources допустимые значения поля howDidYouHearAboutUs
var ReferralSources = []string{
	"Thomson Local",
	"BT Phonebook",
	"Touch Local",
	"We Love Local",
	"Trusted Places",
	"Yell.com",
	"118 247",
	"192.com",
	"Google",
	"Yahoo",
	"Radio",
	"Through a friend",
	"MSN",
	"Other",
}

// IsValidReferralSource проверяет источник по фиксированному списку
func IsValidReferralSource(source string) bool {
	for _, s := range ReferralSources {
		if s == source {
			return true
		}
	}
	return false
}
