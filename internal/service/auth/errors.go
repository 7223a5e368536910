package auth

import "errors"

var (
	// ErrValidation ошибка валидации email или кода
	ErrValidation = errors.New("auth service: validation error")
	// ErrCustomerNotFound клиент с таким email не найден
	ErrCustomerNotFound = errors.New("auth service: customer not found")
	// ErrInvalidCode код не подошел или истек
	ErrInvalidCode = errors.New("auth service: invalid or expired code")
)
