package notifications

import "context"

// Publisher транспорт событий, реализуется pkg/mq.Publisher
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics счетчик опубликованных событий
type Metrics interface {
	ObserveNotification(event string, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
