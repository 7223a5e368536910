package rentalplatform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внутреннего API платформы аренды. Платформа — единственный
// источник истины: расчет цен, проверка доступности, генерация контрактов и
// право на удаление данных выполняются на её стороне.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платформы
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// do выполняет запрос к платформе и декодирует ответ в out (если out != nil).
// 404 транслируется в notFoundErr, прочие не-2xx — в ErrBackend с текстом
// ошибки из тела ответа.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, notFoundErr error) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound && notFoundErr != nil:
		return notFoundErr
	default:
		// Не-2xx ответ несет {"error": "..."}; текст сохраняем в типизированной
		// ошибке, чтобы обработчики могли показать его пользователю как есть
		var apiErr ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Error == "" {
			return fmt.Errorf("%w: unexpected status code %d", ErrBackend, resp.StatusCode)
		}
		return &BackendError{StatusCode: resp.StatusCode, Msg: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// SendLoginCode запрашивает отправку одноразового кода на email клиента.
// Доставка и проверка кода полностью на стороне платформы.
func (c *Client) SendLoginCode(ctx context.Context, email string) error {
	c.log.Info("Requesting login code for email=%s", email)

	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/internal/customer-portal/login", body, nil, nil)
}

// VerifyCode проверяет одноразовый код и возвращает клиента
func (c *Client) VerifyCode(ctx context.Context, email, code string) (*Customer, error) {
	c.log.Info("Verifying login code for email=%s", email)

	body := map[string]string{"email": email, "code": code}
	var out struct {
		Customer Customer `json:"customer"`
	}
	if err := c.do(ctx, http.MethodPost, "/internal/customer-portal/verify-code", body, &out, ErrCustomerNotFound); err != nil {
		return nil, err
	}
	return &out.Customer, nil
}

// ListBookings получает все бронирования клиента
func (c *Client) ListBookings(ctx context.Context, customerID int64) ([]*Booking, error) {
	path := fmt.Sprintf("/internal/customer-portal/bookings?customerId=%d", customerID)

	var out []*Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &out, ErrCustomerNotFound); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*Booking, error) {
	path := fmt.Sprintf("/internal/customer-portal/bookings/%d", bookingID)

	var out Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &out, ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyBooking меняет даты бронирования; платформа пересчитывает цену
// и возвращает обновленное бронирование
func (c *Client) ModifyBooking(ctx context.Context, bookingID int64, req *ModifyBookingRequest) (*Booking, error) {
	path := fmt.Sprintf("/internal/customer-portal/bookings/%d/modify", bookingID)

	var out Booking
	if err := c.do(ctx, http.MethodPut, path, req, &out, ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking отменяет бронирование; решение о возврате принимает платформа
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) (*Booking, error) {
	path := fmt.Sprintf("/internal/customer-portal/bookings/%d/cancel", bookingID)

	var out Booking
	if err := c.do(ctx, http.MethodPut, path, nil, &out, ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckExtension проверяет доступность автомобиля для новых дат и возвращает
// авторитетный расчет стоимости пролонгации
func (c *Client) CheckExtension(ctx context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString) (*ExtensionCheck, error) {
	path := fmt.Sprintf("/internal/customer-portal/bookings/%d/extend/check", bookingID)

	body := map[string]string{
		"newEndDate": newEndDate.String(),
		"newEndTime": newEndTime.String(),
	}
	var out ExtensionCheck
	if err := c.do(ctx, http.MethodPost, path, body, &out, ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmExtension подтверждает пролонгацию с выбранным способом оплаты
func (c *Client) ConfirmExtension(ctx context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString, paymentMethod string) (*ExtensionRecord, error) {
	path := fmt.Sprintf("/internal/customer-portal/bookings/%d/extend/confirm", bookingID)

	body := map[string]string{
		"newEndDate":    newEndDate.String(),
		"newEndTime":    newEndTime.String(),
		"paymentMethod": paymentMethod,
	}
	var out struct {
		Extension ExtensionRecord `json:"extension"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &out, ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &out.Extension, nil
}

// GetProfile получает профиль клиента
func (c *Client) GetProfile(ctx context.Context, customerID int64) (*Profile, error) {
	path := fmt.Sprintf("/internal/customer-portal/profile/%d", customerID)

	var out Profile
	if err := c.do(ctx, http.MethodGet, path, nil, &out, ErrProfileNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile обновляет профиль клиента и возвращает его актуальное состояние
func (c *Client) UpdateProfile(ctx context.Context, customerID int64, req *UpdateProfileRequest) (*Profile, error) {
	path := fmt.Sprintf("/internal/customer-portal/profile/%d", customerID)

	var out Profile
	if err := c.do(ctx, http.MethodPut, path, req, &out, ErrProfileNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestDataDeletion регистрирует запрос на удаление персональных данных.
// Право на удаление (сроки хранения, активные брони) проверяет платформа.
func (c *Client) RequestDataDeletion(ctx context.Context, customerID int64) (*DeletionRequestResult, error) {
	path := fmt.Sprintf("/internal/customer-portal/profile/%d/delete-request", customerID)

	var out DeletionRequestResult
	if err := c.do(ctx, http.MethodPost, path, nil, &out, ErrProfileNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}
