package domain

import (
	"time"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// BookingStatus represents the authoritative lifecycle status of a booking,
// as set by the rental platform.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"

	// StatusInProgress is a derived display status, never stored: the vehicle
	// has been picked up but not yet returned.
	StatusInProgress BookingStatus = "IN_PROGRESS"
)

// PaymentMethod is how a contract extension is paid.
type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodAgency PaymentMethod = "agency"
)

// IsValid returns true if the method is a recognized payment method.
func (m PaymentMethod) IsValid() bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// Booking is the portal's read-only copy of a reservation. It is refetched
// from the rental platform on every page view and after every mutation.
type Booking struct {
	ID         int64
	CustomerID int64
	Reference  string
	Status     BookingStatus

	// Physical pickup/return marks, independent of Status.
	CheckedIn  bool
	CheckedOut bool

	StartDate types.DateString
	StartTime types.TimeString
	EndDate   types.DateString
	EndTime   types.TimeString

	TotalPrice    float64
	PaidAmount    float64
	DepositAmount float64

	VehicleName VehicleName
	Options     []BookingOption
	Contract    *Contract
}

// BookingOption is an add-on attached to a booking.
type BookingOption struct {
	Name       string
	Quantity   int
	TotalPrice float64
}

// Contract carries the downloadable document reference and the history of
// past extensions.
type Contract struct {
	ContractNumber string
	DocumentURL    string

	// CurrentEndDate/CurrentEndTime are set once the contract has been
	// extended at least once; they supersede the booking's own end for any
	// further extension.
	CurrentEndDate types.DateString
	CurrentEndTime types.TimeString

	Extensions []Extension
}

// Extension is an immutable record of a past contract extension.
type Extension struct {
	ExtensionNumber int
	AdditionalDays  int
	TotalAmount     float64
	PaymentStatus   string // "paid" or "pending"
}

// EffectiveStatus returns the status to display: IN_PROGRESS while the
// vehicle is out, otherwise the raw lifecycle status.
func (b *Booking) EffectiveStatus() BookingStatus {
	if b.CheckedIn && !b.CheckedOut {
		return StatusInProgress
	}
	return b.Status
}

// InProgress returns true while the vehicle is picked up and not yet returned.
func (b *Booking) InProgress() bool {
	return b.CheckedIn && !b.CheckedOut
}

// CanModify returns true if the booking dates may still be changed.
func (b *Booking) CanModify() bool {
	return b.Status != StatusCancelled && !b.CheckedIn
}

// CanCancel returns true if the booking may still be cancelled.
func (b *Booking) CanCancel() bool {
	return !b.CheckedIn && b.Status != StatusCancelled && b.Status != StatusCompleted
}

// CanExtend returns true if the booking may still be extended.
func (b *Booking) CanExtend() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted && !b.CheckedOut
}

// CurrentEnd returns the end date/time relevant for a new extension: the
// contract's current end when the contract has already been extended,
// otherwise the booking's own end.
func (b *Booking) CurrentEnd() (types.DateString, types.TimeString) {
	if b.Contract != nil && !b.Contract.CurrentEndDate.IsZero() {
		return b.Contract.CurrentEndDate, b.Contract.CurrentEndTime
	}
	return b.EndDate, b.EndTime
}

// IsUpcoming returns true if the booking should be listed in the "upcoming"
// group: in progress, or starting today or later and still alive.
func (b *Booking) IsUpcoming(now time.Time, loc *time.Location) bool {
	if b.InProgress() {
		return true
	}
	if b.Status == StatusCancelled || b.Status == StatusCompleted {
		return false
	}
	today := types.NewDateString(now.In(loc))
	return !b.StartDate.IsBefore(today)
}

// BookingState is the derived display status plus the permitted-action set.
type BookingState struct {
	EffectiveStatus BookingStatus
	CanModify       bool
	CanCancel       bool
	CanExtend       bool
}

// DeriveState computes the effective display status and permitted actions.
// Pure function of the booking fields; must be recomputed from a fresh copy
// after every mutation, never cached across them.
func DeriveState(b *Booking) BookingState {
	return BookingState{
		EffectiveStatus: b.EffectiveStatus(),
		CanModify:       b.CanModify(),
		CanCancel:       b.CanCancel(),
		CanExtend:       b.CanExtend(),
	}
}
