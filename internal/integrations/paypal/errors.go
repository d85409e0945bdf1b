package paypal

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сериализация)
	ErrInternal = errors.New("paypal client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от PayPal
	ErrInvalidResponse = errors.New("paypal client: invalid response")

	// ErrRejected возвращается, когда PayPal отклонил запрос (4xx)
	ErrRejected = errors.New("paypal client: request rejected")

	// ErrInvalidPayload возвращается для некорректного callback о capture
	ErrInvalidPayload = errors.New("paypal client: invalid capture payload")
)
