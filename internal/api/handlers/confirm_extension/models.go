package confirm_extension

import (
	"github.com/voltride/VR-CustomerPortal/internal/domain"
	confirmExtension "github.com/voltride/VR-CustomerPortal/internal/usecase/confirm_extension"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// ConfirmRequest тело запроса подтверждения пролонгации
type ConfirmRequest struct {
	NewEndDate    types.DateString `json:"newEndDate"`
	NewEndTime    types.TimeString `json:"newEndTime"`
	PaymentMethod string           `json:"paymentMethod"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmRequest) ToUseCaseRequest(customerID, bookingID int64) *confirmExtension.Request {
	return &confirmExtension.Request{
		CustomerID:    customerID,
		BookingID:     bookingID,
		NewEndDate:    r.NewEndDate,
		NewEndTime:    r.NewEndTime,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}
