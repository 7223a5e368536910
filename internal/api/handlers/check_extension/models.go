package check_extension

import (
	checkExtension "github.com/voltride/VR-CustomerPortal/internal/usecase/check_extension"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// CheckRequest тело запроса проверки пролонгации
type CheckRequest struct {
	NewEndDate types.DateString `json:"newEndDate"`
	NewEndTime types.TimeString `json:"newEndTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckRequest) ToUseCaseRequest(customerID, bookingID int64) *checkExtension.Request {
	return &checkExtension.Request{
		CustomerID: customerID,
		BookingID:  bookingID,
		NewEndDate: r.NewEndDate,
		NewEndTime: r.NewEndTime,
	}
}
