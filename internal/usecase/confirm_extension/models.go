package confirm_extension

import (
	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// Request запрос на подтверждение пролонгации
type Request struct {
	CustomerID    int64
	BookingID     int64
	NewEndDate    types.DateString
	NewEndTime    types.TimeString
	PaymentMethod domain.PaymentMethod
}

// Response подтвержденная пролонгация
type Response struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`

	ExtensionNumber int     `json:"extensionNumber"`
	AdditionalDays  int     `json:"additionalDays"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
}
