// Package profile реализует просмотр и редактирование профиля клиента,
// а также запрос удаления персональных данных. Данные профиля живут на
// платформе аренды, сервис валидирует изменения до отправки.
package profile

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/internal/service/profile/models"
)

type Service struct {
	platform RentalPlatformClient
	log      Logger
}

func NewService(platform RentalPlatformClient, log Logger) *Service {
	return &Service{
		platform: platform,
		log:      log,
	}
}

// Get возвращает профиль клиента
func (s *Service) Get(ctx context.Context, customerID int64) (*models.ProfileView, error) {
	s.log.Info("Get: fetching profile for customer=%d", customerID)

	p, err := s.platform.GetProfile(ctx, customerID)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrProfileNotFound, customerID)
		}
		s.log.Error("Get: platform error for customer=%d: %v", customerID, err)
		return nil, err
	}

	return models.FromPlatformProfile(p), nil
}

// Update меняет переданные поля профиля. Email не редактируется: он
// является идентификатором входа.
func (s *Service) Update(ctx context.Context, customerID int64, params *models.UpdateProfileParams) (*models.ProfileView, error) {
	if err := validateUpdateParams(params); err != nil {
		return nil, err
	}

	s.log.Info("Update: updating profile for customer=%d", customerID)

	updated, err := s.platform.UpdateProfile(ctx, customerID, &rentalplatform.UpdateProfileRequest{
		FirstName:  params.FirstName,
		LastName:   params.LastName,
		Phone:      params.Phone,
		Address:    params.Address,
		PostalCode: params.PostalCode,
		City:       params.City,
		Country:    params.Country,
		Language:   params.Language,
	})
	if err != nil {
		if errors.Is(err, rentalplatform.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrProfileNotFound, customerID)
		}
		s.log.Error("Update: platform error for customer=%d: %v", customerID, err)
		return nil, err
	}

	return models.FromPlatformProfile(updated), nil
}

// RequestDeletion инициирует удаление персональных данных. Пока у клиента
// есть активные бронирования, запрос отклоняется без обращения к платформе.
func (s *Service) RequestDeletion(ctx context.Context, customerID int64) (*models.DeletionResult, error) {
	p, err := s.platform.GetProfile(ctx, customerID)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrProfileNotFound, customerID)
		}
		s.log.Error("RequestDeletion: platform error for customer=%d: %v", customerID, err)
		return nil, err
	}

	if p.ActiveBookingsCount > 0 {
		s.log.Warn("RequestDeletion: customer=%d has %d active bookings", customerID, p.ActiveBookingsCount)
		return nil, fmt.Errorf("%w: %d active", ErrActiveBookings, p.ActiveBookingsCount)
	}

	s.log.Info("RequestDeletion: submitting deletion request for customer=%d", customerID)

	result, err := s.platform.RequestDataDeletion(ctx, customerID)
	if err != nil {
		s.log.Error("RequestDeletion: platform error for customer=%d: %v", customerID, err)
		return nil, err
	}

	return &models.DeletionResult{Message: result.Message}, nil
}

func validateUpdateParams(params *models.UpdateProfileParams) error {
	if params == nil {
		return fmt.Errorf("%w: empty request", ErrValidation)
	}

	if err := checkLength("firstName", params.FirstName, domain.MaxNameLength); err != nil {
		return err
	}
	if err := checkLength("lastName", params.LastName, domain.MaxNameLength); err != nil {
		return err
	}
	if err := checkLength("phone", params.Phone, domain.MaxPhoneLength); err != nil {
		return err
	}
	if err := checkLength("address", params.Address, domain.MaxAddressLength); err != nil {
		return err
	}
	if err := checkLength("postalCode", params.PostalCode, domain.MaxNameLength); err != nil {
		return err
	}
	if err := checkLength("city", params.City, domain.MaxNameLength); err != nil {
		return err
	}
	if err := checkLength("country", params.Country, domain.MaxNameLength); err != nil {
		return err
	}

	if params.Language != nil && !i18n.Supported(*params.Language) {
		return fmt.Errorf("%w: unsupported language %q", ErrValidation, *params.Language)
	}

	return nil
}

func checkLength(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrValidation, field, max)
	}
	return nil
}
