package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodTransfer:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method: %s", s)
}

// Payment is immutable once recorded. The only delete path is the
// cascade that runs when its team is deleted.
type Payment struct {
	ID     int32
	TeamID int32
	Amount decimal.Decimal
	Method PaymentMethod
	// TransferRef is required for TRANSFER payments and ignored for CASH.
	TransferRef string
	// TransferDate is only meaningful for TRANSFER payments. Zero when unset.
	TransferDate time.Time
	// Matchday attributes the payment to one of the ten fixtures.
	// Nil means a general (advance) payment.
	Matchday   *int
	Notes      string
	RecordedAt time.Time
}

// EffectiveDate is the date shown on statements: the transfer date when
// one was recorded, otherwise the time the payment was entered.
func (p *Payment) EffectiveDate() time.Time {
	if !p.TransferDate.IsZero() {
		return p.TransferDate
	}
	return p.RecordedAt
}
