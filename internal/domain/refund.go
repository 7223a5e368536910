package domain

import (
	"time"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// IsRefundable reports whether a cancellation at instant now is refunded in
// full: at least RefundNoticeHours remain before the scheduled pickup.
// Once now is past the pickup instant the remaining hours are negative and
// the cancellation is never refundable.
//
// The result is advisory: the rental platform independently enforces the
// policy and returns the authoritative outcome.
func IsRefundable(startDate types.DateString, startTime types.TimeString, now time.Time, loc *time.Location) (bool, error) {
	start, err := startDate.At(startTime, loc)
	if err != nil {
		return false, err
	}
	return start.Sub(now).Hours() >= RefundNoticeHours, nil
}

// RefundAmount returns the amount refunded on cancellation: the full paid
// amount when refundable, nothing otherwise.
func RefundAmount(paidAmount float64, refundable bool) float64 {
	if refundable {
		return paidAmount
	}
	return 0
}
