package notifications

import (
	"context"
	"encoding/json"
)

// LogPublisher пишет события в лог вместо брокера. Используется, когда уведомления выключены.
type LogPublisher struct {
	log Logger
}

func NewLogPublisher(log Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishJSON(_ context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.log.Info("Notification (not sent, notifications disabled): key=%s, body=%s", key, body)
	return nil
}
