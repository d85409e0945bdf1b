package mq

import "errors"

var (
	ErrConnect = errors.New("mq: failed to connect to broker")
	ErrMarshal = errors.New("mq: failed to marshal message")
	ErrPublish = errors.New("mq: failed to publish message")
)
