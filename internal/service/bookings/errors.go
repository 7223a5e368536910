package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("bookings service: booking not found")
	// ErrAccessDenied бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("bookings service: access denied")
	// ErrCannotModify изменение бронирования недоступно
	ErrCannotModify = errors.New("bookings service: booking cannot be modified")
	// ErrCannotCancel отмена бронирования недоступна
	ErrCannotCancel = errors.New("bookings service: booking cannot be cancelled")
	// ErrValidation ошибка валидации входных данных
	ErrValidation = errors.New("bookings service: validation error")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
