package confirm_extension

import (
	"context"
	"errors"
	"fmt"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/infra/storage/extensionsession"
	"github.com/voltride/VR-CustomerPortal/pkg/ptr"
)

// UseCase use case подтверждения пролонгации контракта. Подтверждение
// принимается только по сессии, открытой проверкой доступности: то же
// бронирование, тот же клиент, то же новое окончание. Флаг submitting
// в сессии защищает от параллельного дублирования подтверждения.
type UseCase struct {
	sessionRepo  SessionRepository
	platform     RentalPlatformClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, platform RentalPlatformClient, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		platform:     platform,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет подтверждение пролонгации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmExtension: customer=%d, booking=%d, newEnd=%s %s, method=%s",
		req.CustomerID, req.BookingID, req.NewEndDate, req.NewEndTime, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmExtension: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем сессию пролонгации
	session, err := uc.sessionRepo.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, extensionsession.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNoSession, req.BookingID)
		}
		uc.logger.Error("ConfirmExtension: failed to load session for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if session.CustomerID != req.CustomerID {
		uc.logger.Warn("ConfirmExtension: session %s belongs to customer=%d, requested by customer=%d",
			session.ID, session.CustomerID, req.CustomerID)
		return nil, fmt.Errorf("%w: booking %d", ErrAccessDenied, req.BookingID)
	}

	// 3. Подтверждаемое окончание должно совпадать с проверенным
	if !session.MatchesProposal(req.NewEndDate, req.NewEndTime) {
		uc.logger.Warn("ConfirmExtension: proposal mismatch for session %s: checked %s %s, got %s %s",
			session.ID, session.NewEndDate, session.NewEndTime, req.NewEndDate, req.NewEndTime)
		return nil, fmt.Errorf("%w: checked for %s %s", ErrProposalMismatch, session.NewEndDate, session.NewEndTime)
	}

	// 4. Сессия должна пройти проверку доступности
	if !session.CanConfirm() {
		uc.logger.Warn("ConfirmExtension: session %s is in step %q", session.ID, session.Step)
		return nil, fmt.Errorf("%w: step %s", ErrNotConfirmable, session.Step)
	}

	// 5. Оплата в агентстве допустима, только если платформа ее предложила
	if req.PaymentMethod == domain.PaymentMethodAgency && !session.AgencyPaymentAvailable {
		return nil, fmt.Errorf("%w: booking %d", ErrAgencyUnavailable, req.BookingID)
	}

	// 6. Переводим сессию в шаг оплаты с выбранным способом. Неудачное
	// подтверждение оставляет сессию в оплате, поэтому повторный вызов
	// шаг не меняет
	if session.Step != domain.StepPayment {
		if err := session.Advance(domain.StepPayment); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	session.PaymentMethod = ptr.Ptr(req.PaymentMethod)
	session.UpdatedAt = uc.timeProvider.Now()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Error("ConfirmExtension: failed to update session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 7. Захватываем сессию: повторное подтверждение отклоняется,
	// пока текущее не завершится
	if err := uc.sessionRepo.BeginSubmit(ctx, session.ID); err != nil {
		if errors.Is(err, extensionsession.ErrAlreadySubmitting) {
			uc.logger.Warn("ConfirmExtension: session %s is already submitting", session.ID)
			return nil, fmt.Errorf("%w: booking %d", ErrAlreadySubmitting, req.BookingID)
		}
		uc.logger.Error("ConfirmExtension: failed to begin submit for session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	defer func() {
		session.Submitting = false
		session.UpdatedAt = uc.timeProvider.Now()
		if session.Step.IsTerminal() {
			// Завершенная сессия отработала свое: храним результат
			// только в ответе, запись удаляем
			if err := uc.sessionRepo.DeleteByBookingID(ctx, session.BookingID); err != nil {
				uc.logger.Error("ConfirmExtension: failed to delete session %s: %v", session.ID, err)
			}
			return
		}
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			uc.logger.Error("ConfirmExtension: failed to release session %s: %v", session.ID, err)
		}
	}()

	// 8. Подтверждаем пролонгацию на платформе
	record, err := uc.platform.ConfirmExtension(ctx, req.BookingID, req.NewEndDate, req.NewEndTime, string(req.PaymentMethod))
	if err != nil {
		uc.logger.Error("ConfirmExtension: platform confirm failed for booking=%d: %v", req.BookingID, err)
		// Сессия остается в шаге оплаты: клиент может повторить попытку
		session.LastError = ptr.Ptr(err.Error())
		return nil, err
	}

	// 9. Фиксируем результат
	if err := session.Advance(domain.StepSuccess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	session.ExtensionNumber = ptr.Ptr(record.ExtensionNumber)
	session.PaymentStatus = ptr.Ptr(record.PaymentStatus)
	session.LastError = nil

	uc.logger.Info("ConfirmExtension: booking=%d extension=%d amount=%.2f status=%s",
		req.BookingID, record.ExtensionNumber, record.TotalAmount, record.PaymentStatus)

	return &Response{
		SessionID:       session.ID,
		Step:            string(domain.StepSuccess),
		ExtensionNumber: record.ExtensionNumber,
		AdditionalDays:  record.AdditionalDays,
		TotalAmount:     record.TotalAmount,
		PaymentStatus:   record.PaymentStatus,
	}, nil
}
