package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	PaymentPartial PaymentMode = "partial"
	PaymentFull    PaymentMode = "full"
)

// DepositPercent is the share of the price charged up front in partial mode.
const DepositPercent = 25

func PaymentModeOf(full bool) PaymentMode {
	if full {
		return PaymentFull
	}
	return PaymentPartial
}

func (m PaymentMode) IsFull() bool {
	return m == PaymentFull
}

// Amount is what gets charged for a service priced at price.
// Partial mode floors to a whole unit.
func (m PaymentMode) Amount(price int64) int64 {
	if m == PaymentFull {
		return price
	}
	return price * DepositPercent / 100
}

type Booking struct {
	ID         uuid.UUID   `json:"id"`
	Service    Service     `json:"service"`
	Date       Date        `json:"date"`
	Time       TimeOfDay   `json:"time"`
	Mode       PaymentMode `json:"paymentMode"`
	PaidAmount int64       `json:"paidAmount"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (b Booking) Slot() Slot {
	return Slot{Date: b.Date, Time: b.Time}
}

// Draft is the booking being edited in the booking sheet.
type Draft struct {
	Service Service     `json:"service"`
	Date    Date        `json:"date"`
	Time    TimeOfDay   `json:"time"`
	Mode    PaymentMode `json:"paymentMode"`
}

func (d Draft) Slot() Slot {
	return Slot{Date: d.Date, Time: d.Time}
}

// Quote holds both payment options for the drafted service.
type Quote struct {
	Deposit int64 `json:"deposit"`
	Total   int64 `json:"total"`
	Due     int64 `json:"due"`
}

func (d Draft) Quote() Quote {
	return Quote{
		Deposit: PaymentPartial.Amount(d.Service.Price),
		Total:   PaymentFull.Amount(d.Service.Price),
		Due:     d.Mode.Amount(d.Service.Price),
	}
}
