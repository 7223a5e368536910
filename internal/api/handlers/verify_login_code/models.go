package verify_login_code

import "github.com/voltride/VR-CustomerPortal/internal/service/auth/models"

// VerifyRequest тело запроса проверки кода
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyResponse авторизованный клиент
type VerifyResponse struct {
	Customer *models.CustomerView `json:"customer"`
}
