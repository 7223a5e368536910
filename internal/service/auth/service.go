// Package auth реализует вход по одноразовому коду: запрос кода на email
// и его проверку. Генерация, доставка и срок жизни кода полностью на
// стороне платформы аренды, сервис отвечает только за валидацию формы.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/internal/service/auth/models"
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

// SendLoginCode запрашивает отправку одноразового кода на email
func (s *Service) SendLoginCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	s.log.Info("SendLoginCode: requesting code for email=%s", email)

	if err := s.platform.SendLoginCode(ctx, email); err != nil {
		if errors.Is(err, rentalplatform.ErrCustomerNotFound) {
			return fmt.Errorf("%w: %s", ErrCustomerNotFound, email)
		}
		s.log.Error("SendLoginCode: platform error for email=%s: %v", email, err)
		return err
	}

	return nil
}

// VerifyCode проверяет код и возвращает авторизованного клиента. Код
// валидируется по форме до обращения к платформе: ровно шесть цифр.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (*models.CustomerView, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if err := validateCode(code); err != nil {
		return nil, err
	}

	s.log.Info("VerifyCode: verifying code for email=%s", email)

	customer, err := s.platform.VerifyCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, rentalplatform.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, email)
		}
		if errors.Is(err, rentalplatform.ErrBackend) {
			s.log.Warn("VerifyCode: code rejected for email=%s: %v", email, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
		}
		s.log.Error("VerifyCode: platform error for email=%s: %v", email, err)
		return nil, err
	}

	s.log.Info("VerifyCode: customer=%d authenticated", customer.ID)
	return models.FromPlatformCustomer(customer), nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	return nil
}

func validateCode(code string) error {
	if len(code) != domain.LoginCodeLength {
		return fmt.Errorf("%w: code must be %d digits", ErrValidation, domain.LoginCodeLength)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: code must be %d digits", ErrValidation, domain.LoginCodeLength)
		}
	}
	return nil
}
