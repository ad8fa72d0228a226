package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildSchedule materializes the installment collection for a new loan:
// the disbursement marker at sequence 0 followed by one payable installment
// per due amount. Due amounts are expected precomputed by the caller
// (interest accrual happens upstream of this system) and must sum to the
// principal at money precision.
//
// When dueAmounts is empty the total due is split evenly across the term,
// with the rounding remainder folded into the last installment so the
// schedule sums to the total exactly.
func BuildSchedule(loan *LoanAccount, dueAmounts []decimal.Decimal, now time.Time) ([]*Installment, error) {
	if len(dueAmounts) == 0 {
		if loan.TermMonths <= 0 {
			return nil, ErrEmptySchedule
		}
		dueAmounts = splitEvenly(loan.Principal, loan.TermMonths)
	}

	sum := decimal.Zero
	for _, due := range dueAmounts {
		if due.IsNegative() {
			return nil, ErrInvalidInstallment
		}
		sum = RoundMoney(sum.Add(RoundMoney(due)))
	}
	if !sum.Equal(RoundMoney(loan.Principal)) {
		return nil, ErrScheduleSumMismatch
	}

	installments := make([]*Installment, 0, len(dueAmounts)+1)

	marker := &Installment{
		LoanAccountID:      loan.ID,
		SequenceNumber:     DisbursementSequence,
		DueAmount:          decimal.Zero,
		AmortizedPrincipal: decimal.Zero,
		State:              InstallmentPaid,
		PriorBalance:       RoundMoney(loan.Principal),
		NewBalance:         RoundMoney(loan.Principal),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	installments = append(installments, marker)

	for i, due := range dueAmounts {
		installments = append(installments, &Installment{
			LoanAccountID:      loan.ID,
			SequenceNumber:     i + 1,
			DueAmount:          RoundMoney(due),
			AmortizedPrincipal: decimal.Zero,
			State:              InstallmentPending,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	return installments, nil
}

// splitEvenly splits total across n parts at money precision, folding the
// rounding remainder into the last part.
func splitEvenly(total decimal.Decimal, n int) []decimal.Decimal {
	part := RoundMoney(total.Div(decimal.NewFromInt(int64(n))))

	parts := make([]decimal.Decimal, n)
	allocated := decimal.Zero
	for i := range n - 1 {
		parts[i] = part
		allocated = RoundMoney(allocated.Add(part))
	}

	parts[n-1] = RoundMoney(total.Sub(allocated))

	return parts
}
