package refund_payment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CaptureID) == "" {
		return ErrCaptureIDRequired
	}
	if req.Amount <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, req.Amount)
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxRefundReasonLength {
		return fmt.Errorf("%w: at most %d characters", ErrReasonTooLong, domain.MaxRefundReasonLength)
	}
	return nil
}
