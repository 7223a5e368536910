package rentalplatform

import (
	"encoding/json"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// Customer модель клиента из ответа верификации кода
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// VehicleName нормализованное имя автомобиля {locale → name}.
// Платформа исторически отдает имя в трех форматах: строка,
// JSON-строка с объектом внутри и объект по локалям. Все три
// схлопываются здесь, на границе клиента, чтобы ядро никогда
// не ветвилось по представлению.
type VehicleName map[string]string

// UnmarshalJSON нормализует все исторические форматы имени
func (n *VehicleName) UnmarshalJSON(data []byte) error {
	// Объект по локалям — целевой формат
	var byLocale map[string]string
	if err := json.Unmarshal(data, &byLocale); err == nil {
		*n = byLocale
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	// Строка, внутри которой закодирован объект по локалям
	var nested map[string]string
	if err := json.Unmarshal([]byte(s), &nested); err == nil {
		*n = nested
		return nil
	}

	// Простая строка — считаем именем для локали по умолчанию
	*n = map[string]string{"es": s}
	return nil
}

// Vehicle модель автомобиля
type Vehicle struct {
	Name VehicleName `json:"name"`
}

// FleetVehicle единица флота, к которой привязано бронирование
type FleetVehicle struct {
	Vehicle Vehicle `json:"vehicle"`
}

// BookingOption опция бронирования
type BookingOption struct {
	Option struct {
		Name string `json:"name"`
	} `json:"option"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// ContractExtension запись о состоявшейся пролонгации контракта
type ContractExtension struct {
	ExtensionNumber int     `json:"extensionNumber"`
	AdditionalDays  int     `json:"additionalDays"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
}

// Contract контракт бронирования
type Contract struct {
	ContractNumber string              `json:"contractNumber"`
	DocumentURL    string              `json:"documentUrl,omitempty"`
	CurrentEndDate types.DateString    `json:"currentEndDate,omitempty"`
	CurrentEndTime types.TimeString    `json:"currentEndTime,omitempty"`
	Extensions     []ContractExtension `json:"extensions,omitempty"`
}

// Booking модель бронирования с платформы
type Booking struct {
	ID            int64            `json:"id"`
	CustomerID    int64            `json:"customerId"`
	Reference     string           `json:"reference"`
	Status        string           `json:"status"`
	CheckedIn     bool             `json:"checkedIn"`
	CheckedOut    bool             `json:"checkedOut"`
	StartDate     types.DateString `json:"startDate"`
	EndDate       types.DateString `json:"endDate"`
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	TotalPrice    float64          `json:"totalPrice"`
	PaidAmount    float64          `json:"paidAmount"`
	DepositAmount float64          `json:"depositAmount"`
	FleetVehicle  FleetVehicle     `json:"fleetVehicle"`
	Options       []BookingOption  `json:"options"`
	Contract      *Contract        `json:"contract,omitempty"`
}

// ToDomain конвертирует модель платформы в доменную модель
func (b *Booking) ToDomain() *domain.Booking {
	booking := &domain.Booking{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		Reference:     b.Reference,
		Status:        domain.BookingStatus(b.Status),
		CheckedIn:     b.CheckedIn,
		CheckedOut:    b.CheckedOut,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
		PaidAmount:    b.PaidAmount,
		DepositAmount: b.DepositAmount,
		VehicleName:   domain.VehicleName(b.FleetVehicle.Vehicle.Name),
	}

	for _, opt := range b.Options {
		booking.Options = append(booking.Options, domain.BookingOption{
			Name:       opt.Option.Name,
			Quantity:   opt.Quantity,
			TotalPrice: opt.TotalPrice,
		})
	}

	if b.Contract != nil {
		contract := &domain.Contract{
			ContractNumber: b.Contract.ContractNumber,
			DocumentURL:    b.Contract.DocumentURL,
			CurrentEndDate: b.Contract.CurrentEndDate,
			CurrentEndTime: b.Contract.CurrentEndTime,
		}
		for _, ext := range b.Contract.Extensions {
			contract.Extensions = append(contract.Extensions, domain.Extension{
				ExtensionNumber: ext.ExtensionNumber,
				AdditionalDays:  ext.AdditionalDays,
				TotalAmount:     ext.TotalAmount,
				PaymentStatus:   ext.PaymentStatus,
			})
		}
		booking.Contract = contract
	}

	return booking
}

// ModifyBookingRequest запрос на изменение дат бронирования
type ModifyBookingRequest struct {
	StartDate types.DateString `json:"startDate"`
	EndDate   types.DateString `json:"endDate"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// ExtensionPricing расчет стоимости пролонгации, авторитетный
type ExtensionPricing struct {
	AdditionalDays int     `json:"additionalDays"`
	TotalAmount    float64 `json:"totalAmount"`
}

// ExtensionCheck результат проверки доступности пролонгации
type ExtensionCheck struct {
	Available              bool             `json:"available"`
	Pricing                ExtensionPricing `json:"pricing"`
	AgencyPaymentAvailable bool             `json:"agencyPaymentAvailable"`
}

// ExtensionRecord подтвержденная пролонгация
type ExtensionRecord struct {
	ExtensionNumber int     `json:"extensionNumber"`
	AdditionalDays  int     `json:"additionalDays"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
}

// Profile профиль клиента с данными для GDPR-блока
type Profile struct {
	ID                 int64  `json:"id"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	Address            string `json:"address,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	City               string `json:"city,omitempty"`
	Country            string `json:"country,omitempty"`
	Language           string `json:"language,omitempty"`
	LastBookingEndDate string `json:"lastBookingEndDate,omitempty"`
	ActiveBookingsCount int   `json:"activeBookingsCount"`
}

// UpdateProfileRequest изменяемое подмножество полей профиля
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	Language   *string `json:"language,omitempty"`
}

// DeletionRequestResult ответ платформы на запрос удаления данных
type DeletionRequestResult struct {
	Message string `json:"message"`
}

// ErrorResponse модель ошибки платформы
type ErrorResponse struct {
	Error string `json:"error"`
}
