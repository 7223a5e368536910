package confirm_extension

import "errors"

var (
	// ErrNoSession возвращается, когда для бронирования нет сессии пролонгации
	// (подтверждение без предшествующей проверки доступности)
	ErrNoSession = errors.New("confirm_extension: no extension session for booking")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("confirm_extension: access denied")

	// ErrProposalMismatch возвращается, когда подтверждаемое окончание не
	// совпадает с проверенным в сессии
	ErrProposalMismatch = errors.New("confirm_extension: proposed end does not match checked session")

	// ErrNotConfirmable возвращается, когда сессия не в том шаге
	// (проверка не проводилась, недоступна или уже завершена)
	ErrNotConfirmable = errors.New("confirm_extension: session is not confirmable")

	// ErrAgencyUnavailable возвращается при выборе оплаты в агентстве,
	// когда платформа ее не предлагала
	ErrAgencyUnavailable = errors.New("confirm_extension: agency payment is not available")

	// ErrAlreadySubmitting возвращается при параллельном подтверждении той же сессии
	ErrAlreadySubmitting = errors.New("confirm_extension: confirmation already in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_extension: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_extension: internal error")
)
