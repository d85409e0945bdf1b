package paypal

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счетчик обращений к платежному шлюзу
type Metrics interface {
	ObservePaymentCall(operation string, err error)
}
