package create_booking

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// validateRequest проверяет форму, номер телефона, дату и способ оплаты.
// Выполняется до любых изменений в хранилище.
func validateRequest(req *Request, now time.Time, loc *time.Location) error {
	if err := req.Form.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(req.Form.ContactNumber) == "" {
		return ErrContactNumberRequired
	}

	if err := domain.ValidateServiceDate(req.Form.SelectedDate, now, loc); err != nil {
		return err
	}

	return req.Form.ValidatePaymentMethod()
}

// cashInvoiceNumber номер счета для оплаты наличными: CASH-ORD-<unix millis>-<0..999>
func cashInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", domain.CashOrderPrefix, now.UnixMilli(), rand.Intn(domain.CashOrderRandomBound))
}
