package check_extension

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/pkg/ptr"
)

// UseCase use case проверки доступности пролонгации контракта.
// Каждая проверка открывает новую сессию пролонгации для бронирования,
// вытесняя предыдущую: подтверждение принимается только по сессии,
// чья проверка завершилась доступностью для того же нового окончания.
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

// Execute выполняет проверку доступности пролонгации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckExtension: customer=%d, booking=%d, newEnd=%s %s",
		req.CustomerID, req.BookingID, req.NewEndDate, req.NewEndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckExtension: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем бронирование и проверяем владельца
	wb, err := uc.platform.GetBooking(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, req.BookingID)
		}
		uc.logger.Error("CheckExtension: failed to get booking %d: %v", req.BookingID, err)
		return nil, err
	}

	booking := wb.ToDomain()
	if booking.CustomerID != req.CustomerID {
		uc.logger.Warn("CheckExtension: booking=%d belongs to customer=%d, requested by customer=%d",
			req.BookingID, booking.CustomerID, req.CustomerID)
		return nil, fmt.Errorf("%w: booking %d", ErrAccessDenied, req.BookingID)
	}

	// 3. Проверяем, что бронирование продлеваемо
	if !booking.CanExtend() {
		uc.logger.Warn("CheckExtension: booking=%d is not extendable (status=%s, checkedOut=%t)",
			req.BookingID, booking.Status, booking.CheckedOut)
		return nil, fmt.Errorf("%w: booking %d", ErrCannotExtend, req.BookingID)
	}

	// 4. Новое окончание должно быть строго позже текущего
	// (учитывая уже оформленные пролонгации контракта)
	curEndDate, curEndTime := booking.CurrentEnd()
	if !domain.IsForwardExtension(curEndDate, curEndTime, req.NewEndDate, req.NewEndTime) {
		return nil, fmt.Errorf("%w: new end must be after current end %s %s", ErrInvalidInput, curEndDate, curEndTime)
	}

	currentDays, err := domain.DaysBetween(booking.StartDate, curEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	newDays, err := domain.DaysBetween(booking.StartDate, req.NewEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	additionalDays := domain.AdditionalDays(currentDays, newDays)
	if additionalDays < 1 {
		return nil, fmt.Errorf("%w: extension must add at least one day", ErrInvalidInput)
	}

	// 5. Локальная оценка по дневному тарифу бронирования
	estimate, err := uc.estimateAmount(booking, additionalDays)
	if err != nil {
		return nil, err
	}

	// 6. Открываем новую сессию пролонгации (вытесняет предыдущую)
	now := uc.timeProvider.Now()
	session := &domain.ExtensionSession{
		ID:         uuid.NewString(),
		BookingID:  req.BookingID,
		CustomerID: req.CustomerID,
		Step:       domain.StepForm,
		NewEndDate: req.NewEndDate,
		NewEndTime: req.NewEndTime,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := session.Advance(domain.StepChecking); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Error("CheckExtension: failed to save session for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 7. Запрашиваем доступность у платформы
	check, err := uc.platform.CheckExtension(ctx, req.BookingID, req.NewEndDate, req.NewEndTime)
	if err != nil {
		uc.logger.Error("CheckExtension: platform check failed for booking=%d: %v", req.BookingID, err)
		// Сессия возвращается к форме, ошибка сохраняется для диагностики
		if advErr := session.Advance(domain.StepForm); advErr != nil {
			uc.logger.Error("CheckExtension: session %s: %v", session.ID, advErr)
		}
		session.LastError = ptr.Ptr(err.Error())
		session.UpdatedAt = uc.timeProvider.Now()
		if updErr := uc.sessionRepo.Update(ctx, session); updErr != nil {
			uc.logger.Error("CheckExtension: failed to update session %s: %v", session.ID, updErr)
		}
		return nil, err
	}

	// 8. Фиксируем результат проверки в сессии
	if check.Available {
		if err := session.Advance(domain.StepAvailable); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		session.AdditionalDays = check.Pricing.AdditionalDays
		session.TotalAmount = check.Pricing.TotalAmount
		session.AgencyPaymentAvailable = check.AgencyPaymentAvailable
	} else {
		if err := session.Advance(domain.StepUnavailable); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	session.LastError = nil
	session.UpdatedAt = uc.timeProvider.Now()

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Error("CheckExtension: failed to update session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckExtension: booking=%d available=%t days=%d amount=%.2f",
		req.BookingID, check.Available, session.AdditionalDays, session.TotalAmount)

	return &Response{
		SessionID:              session.ID,
		Step:                   string(session.Step),
		Available:              check.Available,
		AdditionalDays:         session.AdditionalDays,
		TotalAmount:            session.TotalAmount,
		EstimatedAmount:        estimate,
		AgencyPaymentAvailable: session.AgencyPaymentAvailable,
	}, nil
}

// estimateAmount считает ориентировочную стоимость пролонгации по
// дневному тарифу исходного бронирования
func (uc *UseCase) estimateAmount(booking *domain.Booking, additionalDays int) (float64, error) {
	originalDays, err := domain.DaysBetween(booking.StartDate, booking.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	rate, err := domain.PerDayRate(booking.TotalPrice, domain.RateBasisDays(originalDays))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return domain.Estimate(rate, additionalDays), nil
}
