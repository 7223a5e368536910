package update_profile

import "github.com/voltride/VR-CustomerPortal/internal/service/profile/models"

// UpdateRequest тело запроса изменения профиля; отсутствующие поля не меняются
type UpdateRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	Language   *string `json:"language,omitempty"`
}

// ToServiceParams конвертирует HTTP запрос в параметры сервиса
func (r *UpdateRequest) ToServiceParams() *models.UpdateProfileParams {
	return &models.UpdateProfileParams{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		City:       r.City,
		Country:    r.Country,
		Language:   r.Language,
	}
}

// UpdateResponse обновленный профиль с подтверждением
type UpdateResponse struct {
	Profile *models.ProfileView `json:"profile"`
	Message string              `json:"message"`
}
