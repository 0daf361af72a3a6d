package maintenance

import "errors"

var (
	// ErrBackup возвращается, если файл резервной копии не записан
	ErrBackup = errors.New("maintenance: backup failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
