package models

import "github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"

// CustomerView авторизованный клиент портала
type CustomerView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FromPlatformCustomer строит представление из модели платформы
func FromPlatformCustomer(c *rentalplatform.Customer) *CustomerView {
	return &CustomerView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}
