package courts

import "errors"

var (
	// ErrCacheMiss возвращается, когда в кэше нет списка кортов
	ErrCacheMiss = errors.New("courts.cache: cache miss")

	// ErrCache возвращается при ошибках обращения к redis или разбора значения
	ErrCache = errors.New("courts.cache: redis error")
)
