package check_extension

import "github.com/voltride/VR-CustomerPortal/pkg/types"

// Request запрос на проверку доступности пролонгации
type Request struct {
	CustomerID int64
	BookingID  int64
	NewEndDate types.DateString
	NewEndTime types.TimeString
}

// Response результат проверки. EstimatedAmount — локальная оценка по
// дневному тарифу бронирования, TotalAmount — авторитетная цена платформы.
type Response struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`
	Available bool   `json:"available"`

	AdditionalDays  int     `json:"additionalDays"`
	TotalAmount     float64 `json:"totalAmount"`
	EstimatedAmount float64 `json:"estimatedAmount"`

	AgencyPaymentAvailable bool `json:"agencyPaymentAvailable"`
}
