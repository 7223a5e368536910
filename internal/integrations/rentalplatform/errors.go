package rentalplatform

import (
	"errors"
	"fmt"
)

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден на платформе
	ErrCustomerNotFound = errors.New("rentalplatform client: customer not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("rentalplatform client: booking not found")

	// ErrProfileNotFound возвращается, когда профиль клиента не найден
	ErrProfileNotFound = errors.New("rentalplatform client: profile not found")

	// ErrBackend возвращается при отказе платформы (не-2xx ответ);
	// оборачивается текстом ошибки из поля {"error": "..."} ответа
	ErrBackend = errors.New("rentalplatform client: backend rejected request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("rentalplatform client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("rentalplatform client: invalid response")
)

// BackendError несет текст отказа платформы из поля {"error": "..."} ответа.
// Текст показывается пользователю как есть; errors.Is(err, ErrBackend)
// продолжает работать через Unwrap.
type BackendError struct {
	StatusCode int
	Msg        string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("rentalplatform client: backend rejected request (status %d): %s", e.StatusCode, e.Msg)
}

func (e *BackendError) Unwrap() error {
	return ErrBackend
}

// BackendMessage извлекает текст отказа платформы из цепочки ошибок.
// Возвращает false, если платформа не прислала сообщение (транспортная
// ошибка или ответ без тела).
func BackendMessage(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) && be.Msg != "" {
		return be.Msg, true
	}
	return "", false
}
