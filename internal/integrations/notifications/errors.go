package notifications

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось опубликовать
	ErrPublish = errors.New("notifications: failed to publish event")
)
