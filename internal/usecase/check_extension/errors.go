package check_extension

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_extension: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("check_extension: access denied")

	// ErrCannotExtend возвращается, когда бронирование нельзя продлить
	// (отменено, завершено или автомобиль уже возвращен)
	ErrCannotExtend = errors.New("check_extension: booking cannot be extended")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_extension: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_extension: internal error")
)
