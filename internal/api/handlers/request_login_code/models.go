package request_login_code

// LoginRequest тело запроса кода входа
type LoginRequest struct {
	Email string `json:"email"`
}

// LoginResponse подтверждение отправки кода
type LoginResponse struct {
	Message string `json:"message"`
}
