package profile

import "errors"

var (
	// ErrProfileNotFound профиль клиента не найден
	ErrProfileNotFound = errors.New("profile service: profile not found")
	// ErrValidation ошибка валидации входных данных
	ErrValidation = errors.New("profile service: validation error")
	// ErrActiveBookings удаление данных недоступно при активных бронированиях
	ErrActiveBookings = errors.New("profile service: customer has active bookings")
)
