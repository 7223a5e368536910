package extensionsession

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия пролонгации не найдена
	ErrSessionNotFound = errors.New("extensionsession.repository: session not found")

	// ErrAlreadySubmitting возвращается, когда по сессии уже выполняется
	// подтверждение (защита от дублирующих запросов)
	ErrAlreadySubmitting = errors.New("extensionsession.repository: confirmation already in flight")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("extensionsession.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("extensionsession.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("extensionsession.repository: failed to scan row")
)
