package domain

// Refund policy constants
const (
	// RefundNoticeHours is the minimum number of hours before pickup for a
	// cancellation to be refunded in full.
	RefundNoticeHours = 48
)

// Validation constants
const (
	LoginCodeLength = 6

	MaxNameLength    = 100
	MaxPhoneLength   = 30
	MaxAddressLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimezone is the shared local time zone assumed by booking date/time
// fields when the deployment does not configure one explicitly.
const DefaultTimezone = "Europe/Madrid"

// InactiveStatuses lists statuses in which a booking is immutable from the
// portal's point of view.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// PaymentMethods accepted for an extension.
var PaymentMethods = []PaymentMethod{
	PaymentMethodStripe,
	PaymentMethodAgency,
}
