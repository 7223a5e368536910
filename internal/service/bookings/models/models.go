package models

import (
	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// BookingView представление бронирования для клиентского портала
type BookingView struct {
	ID              int64               `json:"id"`
	Reference       string              `json:"reference"`
	Status          string              `json:"status"`
	StatusLabel     string              `json:"statusLabel"`
	VehicleName     string              `json:"vehicleName"`
	StartDate       types.DateString    `json:"startDate"`
	StartTime       types.TimeString    `json:"startTime"`
	EndDate         types.DateString    `json:"endDate"`
	EndTime         types.TimeString    `json:"endTime"`
	CurrentEndDate  types.DateString    `json:"currentEndDate"`
	CurrentEndTime  types.TimeString    `json:"currentEndTime"`
	TotalPrice      float64             `json:"totalPrice"`
	PaidAmount      float64             `json:"paidAmount"`
	DepositAmount   float64             `json:"depositAmount"`
	CheckedIn       bool                `json:"checkedIn"`
	CheckedOut      bool                `json:"checkedOut"`
	CanModify       bool                `json:"canModify"`
	CanCancel       bool                `json:"canCancel"`
	CanExtend       bool                `json:"canExtend"`
	Options         []BookingOptionView `json:"options,omitempty"`
	Contract        *ContractView       `json:"contract,omitempty"`
}

// BookingOptionView дополнительная опция бронирования
type BookingOptionView struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// ContractView контракт бронирования с продлениями
type ContractView struct {
	ContractNumber string          `json:"contractNumber"`
	DocumentURL    string          `json:"documentUrl,omitempty"`
	Extensions     []ExtensionView `json:"extensions,omitempty"`
}

// ExtensionView оформленное продление контракта
type ExtensionView struct {
	ExtensionNumber    int     `json:"extensionNumber"`
	AdditionalDays     int     `json:"additionalDays"`
	TotalAmount        float64 `json:"totalAmount"`
	PaymentStatus      string  `json:"paymentStatus"`
	PaymentStatusLabel string  `json:"paymentStatusLabel"`
}

// ListBookingsResult разделённый список бронирований клиента
type ListBookingsResult struct {
	Upcoming []*BookingView `json:"upcoming"`
	Past     []*BookingView `json:"past"`
}

// BookingDetail детальная карточка бронирования с данными для отмены
type BookingDetail struct {
	Booking       *BookingView `json:"booking"`
	Refundable    bool         `json:"refundable"`
	RefundAmount  float64      `json:"refundAmount"`
	CancelMessage string       `json:"cancelMessage"`
}

// ModifyBookingParams запрошенные изменения дат бронирования
type ModifyBookingParams struct {
	StartDate types.DateString
	StartTime types.TimeString
	EndDate   types.DateString
	EndTime   types.TimeString
}

// ModifyBookingResult результат изменения: актуальное бронирование платформы
// и локальная оценка стоимости по дневному тарифу
type ModifyBookingResult struct {
	Booking        *BookingView `json:"booking"`
	EstimatedPrice float64      `json:"estimatedPrice"`
}

// CancelBookingResult результат отмены бронирования
type CancelBookingResult struct {
	Booking      *BookingView `json:"booking"`
	Refunded     bool         `json:"refunded"`
	RefundAmount float64      `json:"refundAmount"`
}

// FromDomainBooking строит представление из доменной модели,
// локализуя название автомобиля и статус
func FromDomainBooking(b *domain.Booking, lang i18n.Lang) *BookingView {
	state := domain.DeriveState(b)
	curDate, curTime := b.CurrentEnd()

	view := &BookingView{
		ID:             b.ID,
		Reference:      b.Reference,
		Status:         string(state.EffectiveStatus),
		StatusLabel:    i18n.T(lang, "status."+string(state.EffectiveStatus)),
		VehicleName:    b.VehicleName.Display(string(lang)),
		StartDate:      b.StartDate,
		StartTime:      b.StartTime,
		EndDate:        b.EndDate,
		EndTime:        b.EndTime,
		CurrentEndDate: curDate,
		CurrentEndTime: curTime,
		TotalPrice:     b.TotalPrice,
		PaidAmount:     b.PaidAmount,
		DepositAmount:  b.DepositAmount,
		CheckedIn:      b.CheckedIn,
		CheckedOut:     b.CheckedOut,
		CanModify:      state.CanModify,
		CanCancel:      state.CanCancel,
		CanExtend:      state.CanExtend,
	}

	for _, opt := range b.Options {
		view.Options = append(view.Options, BookingOptionView{
			Name:       opt.Name,
			Quantity:   opt.Quantity,
			TotalPrice: opt.TotalPrice,
		})
	}

	if b.Contract != nil {
		contract := &ContractView{
			ContractNumber: b.Contract.ContractNumber,
			DocumentURL:    b.Contract.DocumentURL,
		}
		for _, ext := range b.Contract.Extensions {
			label := i18n.T(lang, "extension.pending")
			if ext.PaymentStatus == "paid" {
				label = i18n.T(lang, "extension.paid")
			}
			contract.Extensions = append(contract.Extensions, ExtensionView{
				ExtensionNumber:    ext.ExtensionNumber,
				AdditionalDays:     ext.AdditionalDays,
				TotalAmount:        ext.TotalAmount,
				PaymentStatus:      ext.PaymentStatus,
				PaymentStatusLabel: label,
			})
		}
		view.Contract = contract
	}

	return view
}
