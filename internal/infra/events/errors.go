package events

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("events: failed to publish event")
)
