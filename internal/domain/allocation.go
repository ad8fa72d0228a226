package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed-point precision for all monetary amounts.
// Every intermediate result is rounded to this scale immediately so that
// drift cannot accumulate across a long schedule.
const MoneyScale = 2

// RoundMoney rounds a monetary amount to MoneyScale decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// Allocation is the result of spreading one payment across a schedule.
// Touched installments have already been mutated in place.
type Allocation struct {
	Touched           []*Installment
	FirstAffected     *Installment
	DueAmountSnapshot decimal.Decimal
	Applied           decimal.Decimal
	Unapplied         decimal.Decimal
}

// AllocatePayment distributes amount across the payable installments of one
// loan, oldest obligation first. Installments are mutated in place: due
// amount decreases, amortized principal grows, and an installment whose due
// amount reaches zero flips to paid with the given payment date.
//
// The ascending sequence order decides which debt is satisfied first and
// must not be relaxed. Any amount left over after the last payable
// installment is returned as Unapplied; it is not carried forward.
//
// Returns ErrInvalidAmount for a non-positive amount and ErrNoPendingDebt
// when no installment can receive money.
func AllocatePayment(installments []*Installment, amount decimal.Decimal, date time.Time) (*Allocation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	sort.SliceStable(installments, func(a, b int) bool {
		return installments[a].SequenceNumber < installments[b].SequenceNumber
	})

	alloc := &Allocation{
		Applied: decimal.Zero,
	}

	remaining := RoundMoney(amount)
	for _, inst := range installments {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		if !inst.IsPayable() {
			continue
		}

		if alloc.FirstAffected == nil {
			alloc.FirstAffected = inst
			alloc.DueAmountSnapshot = inst.DueAmount
		}

		applied := RoundMoney(decimal.Min(remaining, inst.DueAmount))

		inst.DueAmount = RoundMoney(inst.DueAmount.Sub(applied))
		inst.AmortizedPrincipal = RoundMoney(inst.AmortizedPrincipal.Add(applied))

		if inst.DueAmount.LessThanOrEqual(decimal.Zero) {
			inst.DueAmount = decimal.Zero
			inst.MarkPaid(date)
		}

		remaining = RoundMoney(remaining.Sub(applied))
		alloc.Applied = RoundMoney(alloc.Applied.Add(applied))
		alloc.Touched = append(alloc.Touched, inst)
	}

	if alloc.FirstAffected == nil {
		return nil, ErrNoPendingDebt
	}

	alloc.Unapplied = remaining

	return alloc, nil
}
