// Package bookings реализует операции клиентского портала над бронированиями:
// список, детальная карточка, изменение дат и отмена. Сервис не хранит
// бронирования сам: источником истины всегда остается платформа аренды,
// сервис лишь выводит производное состояние и проверяет права клиента.
package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings/models"
)

type Service struct {
	platform RentalPlatformClient
	timeProv TimeProvider
	location *time.Location
	log      Logger
}

func NewService(platform RentalPlatformClient, timeProv TimeProvider, location *time.Location, log Logger) *Service {
	return &Service{
		platform: platform,
		timeProv: timeProv,
		location: location,
		log:      log,
	}
}

// List возвращает бронирования клиента, разделенные на предстоящие и
// прошедшие. Бронирование в процессе аренды всегда попадает в предстоящие.
func (s *Service) List(ctx context.Context, customerID int64, lang i18n.Lang) (*models.ListBookingsResult, error) {
	s.log.Info("List: fetching bookings for customer=%d", customerID)

	wireBookings, err := s.platform.ListBookings(ctx, customerID)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrBookingNotFound, customerID)
		}
		s.log.Error("List: platform error for customer=%d: %v", customerID, err)
		return nil, err
	}

	now := s.timeProv.Now()
	result := &models.ListBookingsResult{
		Upcoming: []*models.BookingView{},
		Past:     []*models.BookingView{},
	}

	for _, wb := range wireBookings {
		booking := wb.ToDomain()
		view := models.FromDomainBooking(booking, lang)
		if booking.IsUpcoming(now, s.location) {
			result.Upcoming = append(result.Upcoming, view)
		} else {
			result.Past = append(result.Past, view)
		}
	}

	s.log.Info("List: customer=%d upcoming=%d past=%d", customerID, len(result.Upcoming), len(result.Past))
	return result, nil
}

// GetByID возвращает детальную карточку бронирования вместе с расчетом
// возврата для диалога отмены. Чужое бронирование не раскрывается.
func (s *Service) GetByID(ctx context.Context, customerID, bookingID int64, lang i18n.Lang) (*models.BookingDetail, error) {
	booking, err := s.fetchOwned(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}

	refundable, refundAmount, err := s.refundPreview(booking)
	if err != nil {
		s.log.Error("GetByID: refund preview failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &models.BookingDetail{
		Booking:       models.FromDomainBooking(booking, lang),
		Refundable:    refundable,
		RefundAmount:  refundAmount,
		CancelMessage: cancelMessage(lang, refundable, booking.PaidAmount),
	}, nil
}

// Modify меняет даты бронирования на платформе. Оценка новой стоимости
// считается локально по дневному тарифу исходного бронирования и
// возвращается рядом с авторитетной ценой платформы.
func (s *Service) Modify(ctx context.Context, customerID, bookingID int64, params *models.ModifyBookingParams, lang i18n.Lang) (*models.ModifyBookingResult, error) {
	if err := validateModifyParams(params); err != nil {
		return nil, err
	}

	booking, err := s.fetchOwned(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanModify() {
		s.log.Warn("Modify: booking=%d is not modifiable (status=%s checkedIn=%t)", bookingID, booking.Status, booking.CheckedIn)
		return nil, fmt.Errorf("%w: booking %d", ErrCannotModify, bookingID)
	}

	if !hasDateChanges(booking, params) {
		return nil, fmt.Errorf("%w: no changes requested", ErrValidation)
	}

	estimate, err := s.estimatePrice(booking, params)
	if err != nil {
		return nil, err
	}

	s.log.Info("Modify: booking=%d customer=%d new range %s %s — %s %s",
		bookingID, customerID, params.StartDate, params.StartTime, params.EndDate, params.EndTime)

	updated, err := s.platform.ModifyBooking(ctx, bookingID, &rentalplatform.ModifyBookingRequest{
		StartDate: params.StartDate,
		StartTime: params.StartTime,
		EndDate:   params.EndDate,
		EndTime:   params.EndTime,
	})
	if err != nil {
		if errors.Is(err, rentalplatform.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("Modify: platform error for booking=%d: %v", bookingID, err)
		return nil, err
	}

	return &models.ModifyBookingResult{
		Booking:        models.FromDomainBooking(updated.ToDomain(), lang),
		EstimatedPrice: estimate,
	}, nil
}

// Cancel отменяет бронирование. Возврат полный, если до начала аренды
// остается не меньше установленного порога, иначе анти-аванс удерживается.
func (s *Service) Cancel(ctx context.Context, customerID, bookingID int64, lang i18n.Lang) (*models.CancelBookingResult, error) {
	booking, err := s.fetchOwned(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanCancel() {
		s.log.Warn("Cancel: booking=%d is not cancellable (status=%s checkedIn=%t)", bookingID, booking.Status, booking.CheckedIn)
		return nil, fmt.Errorf("%w: booking %d", ErrCannotCancel, bookingID)
	}

	refundable, refundAmount, err := s.refundPreview(booking)
	if err != nil {
		s.log.Error("Cancel: refund preview failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.log.Info("Cancel: booking=%d customer=%d refundable=%t amount=%.2f", bookingID, customerID, refundable, refundAmount)

	cancelled, err := s.platform.CancelBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("Cancel: platform error for booking=%d: %v", bookingID, err)
		return nil, err
	}

	return &models.CancelBookingResult{
		Booking:      models.FromDomainBooking(cancelled.ToDomain(), lang),
		Refunded:     refundable,
		RefundAmount: refundAmount,
	}, nil
}

// fetchOwned загружает бронирование и проверяет, что оно принадлежит
// клиенту. Чужое бронирование отдаем как отказ в доступе, а не 404,
// чтобы не смешивать с реально отсутствующими.
func (s *Service) fetchOwned(ctx context.Context, customerID, bookingID int64) (*domain.Booking, error) {
	wb, err := s.platform.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("fetchOwned: platform error for booking=%d: %v", bookingID, err)
		return nil, err
	}

	booking := wb.ToDomain()
	if booking.CustomerID != customerID {
		s.log.Warn("fetchOwned: booking=%d belongs to customer=%d, requested by customer=%d", bookingID, booking.CustomerID, customerID)
		return nil, fmt.Errorf("%w: booking %d", ErrAccessDenied, bookingID)
	}

	return booking, nil
}

func (s *Service) refundPreview(booking *domain.Booking) (bool, float64, error) {
	refundable, err := domain.IsRefundable(booking.StartDate, booking.StartTime, s.timeProv.Now(), s.location)
	if err != nil {
		return false, 0, err
	}
	return refundable, domain.RefundAmount(booking.PaidAmount, refundable), nil
}

// estimatePrice считает локальную оценку стоимости нового диапазона по
// дневному тарифу исходного бронирования. Авторитетную цену всегда
// возвращает платформа.
func (s *Service) estimatePrice(booking *domain.Booking, params *models.ModifyBookingParams) (float64, error) {
	originalDays, err := domain.DaysBetween(booking.StartDate, booking.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	newDays, err := domain.DaysBetween(params.StartDate, params.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid dates: %v", ErrValidation, err)
	}
	if newDays < 1 {
		return 0, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}

	rate, err := domain.PerDayRate(booking.TotalPrice, domain.RateBasisDays(domain.ClampDays(originalDays)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return domain.Estimate(rate, newDays), nil
}

func validateModifyParams(params *models.ModifyBookingParams) error {
	if params == nil {
		return fmt.Errorf("%w: empty request", ErrValidation)
	}
	if err := params.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: startDate: %v", ErrValidation, err)
	}
	if err := params.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: endDate: %v", ErrValidation, err)
	}
	if err := params.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrValidation, err)
	}
	if err := params.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrValidation, err)
	}
	return nil
}

func hasDateChanges(booking *domain.Booking, params *models.ModifyBookingParams) bool {
	return params.StartDate != booking.StartDate ||
		params.StartTime != booking.StartTime ||
		params.EndDate != booking.EndDate ||
		params.EndTime != booking.EndTime
}

func cancelMessage(lang i18n.Lang, refundable bool, paidAmount float64) string {
	if refundable {
		return i18n.Tf(lang, "cancel.refundable", paidAmount)
	}
	return i18n.Tf(lang, "cancel.nonRefundable", paidAmount, domain.RefundNoticeHours)
}
