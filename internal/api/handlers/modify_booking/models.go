package modify_booking

import (
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings/models"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// ModifyRequest тело запроса изменения дат бронирования
type ModifyRequest struct {
	StartDate types.DateString `json:"startDate"`
	StartTime types.TimeString `json:"startTime"`
	EndDate   types.DateString `json:"endDate"`
	EndTime   types.TimeString `json:"endTime"`
}

// ToServiceParams конвертирует HTTP запрос в параметры сервиса
func (r *ModifyRequest) ToServiceParams() *models.ModifyBookingParams {
	return &models.ModifyBookingParams{
		StartDate: r.StartDate,
		StartTime: r.StartTime,
		EndDate:   r.EndDate,
		EndTime:   r.EndTime,
	}
}
