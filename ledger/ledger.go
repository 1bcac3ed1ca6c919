// Package ledger holds the pure financial core: the calculator that
// turns a team's fee configuration and payment history into a summary,
// the matchday scheduler, and the statement and roster builders. Nothing
// here performs I/O; callers load the data and hand it in.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/model"
)

type Status string

const (
	StatusPaid    Status = "PAID"
	StatusPartial Status = "PARTIAL"
	StatusPending Status = "PENDING"
)

// Summary is the derived financial state of a single team. All values
// are exact decimals; nothing is rounded or clamped.
type Summary struct {
	Registration decimal.Decimal
	Arbitration  decimal.Decimal
	Discount     decimal.Decimal
	// BaseAmount = Registration + Arbitration.
	BaseAmount decimal.Decimal
	// TotalToPay = BaseAmount - Discount. Negative only when the stored
	// discount exceeds the base amount; see DiscountExceedsBase.
	TotalToPay decimal.Decimal
	TotalPaid  decimal.Decimal
	// Balance = TotalToPay - TotalPaid.
	Balance decimal.Decimal
	Status  Status
	// GeneralPayments sums payments not attributed to any matchday.
	GeneralPayments decimal.Decimal
	// PerMatchdayPaid sums payments per matchday, keys 1..10.
	PerMatchdayPaid map[int]decimal.Decimal
	// DiscountExceedsBase marks a misconfigured legacy row whose
	// discount is larger than the base amount. New writes reject this,
	// but rows that predate the check are surfaced, not hidden.
	DiscountExceedsBase bool
}

// Summarize derives the financial summary for one team. Payments may be
// in any order; only their amounts and matchday attribution matter.
func Summarize(registration, arbitration, discount decimal.Decimal, payments []model.Payment) Summary {
	s := Summary{
		Registration:    registration,
		Arbitration:     arbitration,
		Discount:        discount,
		PerMatchdayPaid: make(map[int]decimal.Decimal, model.MatchdayCount),
	}

	s.BaseAmount = registration.Add(arbitration)
	s.TotalToPay = s.BaseAmount.Sub(discount)
	s.DiscountExceedsBase = discount.GreaterThan(s.BaseAmount)

	for i := 1; i <= model.MatchdayCount; i++ {
		s.PerMatchdayPaid[i] = decimal.Zero
	}

	for _, p := range payments {
		s.TotalPaid = s.TotalPaid.Add(p.Amount)
		if p.Matchday == nil {
			s.GeneralPayments = s.GeneralPayments.Add(p.Amount)
			continue
		}
		s.PerMatchdayPaid[*p.Matchday] = s.PerMatchdayPaid[*p.Matchday].Add(p.Amount)
	}

	s.Balance = s.TotalToPay.Sub(s.TotalPaid)

	switch {
	case s.Balance.LessThanOrEqual(decimal.Zero):
		s.Status = StatusPaid
	case s.TotalPaid.GreaterThan(decimal.Zero):
		s.Status = StatusPartial
	default:
		s.Status = StatusPending
	}

	return s
}
