package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// validateRequest проверяет форму и дату услуги
func validateRequest(req *Request, now time.Time, loc *time.Location) error {
	if err := req.Form.Validate(); err != nil {
		return err
	}
	return domain.ValidateServiceDate(req.Form.SelectedDate, now, loc)
}
