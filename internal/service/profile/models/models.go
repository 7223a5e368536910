package models

import "github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"

// ProfileView профиль клиента для портала
type ProfileView struct {
	ID                  int64  `json:"id"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Address             string `json:"address,omitempty"`
	PostalCode          string `json:"postalCode,omitempty"`
	City                string `json:"city,omitempty"`
	Country             string `json:"country,omitempty"`
	Language            string `json:"language,omitempty"`
	LastBookingEndDate  string `json:"lastBookingEndDate,omitempty"`
	ActiveBookingsCount int    `json:"activeBookingsCount"`
	CanRequestDeletion  bool   `json:"canRequestDeletion"`
}

// UpdateProfileParams изменяемые поля профиля; nil — поле не трогаем
type UpdateProfileParams struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	PostalCode *string
	City       *string
	Country    *string
	Language   *string
}

// DeletionResult результат запроса удаления персональных данных
type DeletionResult struct {
	Message string `json:"message"`
}

// FromPlatformProfile строит представление профиля из модели платформы
func FromPlatformProfile(p *rentalplatform.Profile) *ProfileView {
	return &ProfileView{
		ID:                  p.ID,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Email:               p.Email,
		Phone:               p.Phone,
		Address:             p.Address,
		PostalCode:          p.PostalCode,
		City:                p.City,
		Country:             p.Country,
		Language:            p.Language,
		LastBookingEndDate:  p.LastBookingEndDate,
		ActiveBookingsCount: p.ActiveBookingsCount,
		CanRequestDeletion:  p.ActiveBookingsCount == 0,
	}
}
