package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле администратора
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для просроченного, испорченного или чужого токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
