package cancel_payment

import (
	"fmt"
	"strings"
)

const maxOrderIDLength = 64

func validateRequest(req *Request) error {
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return fmt.Errorf("%w: order id is required", ErrInvalidOrderID)
	}
	if len(orderID) > maxOrderIDLength {
		return fmt.Errorf("%w: order id must be at most %d characters", ErrInvalidOrderID, maxOrderIDLength)
	}
	return nil
}
