package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentState is the lifecycle state of an installment.
type InstallmentState string

const (
	InstallmentPending InstallmentState = "pending"
	InstallmentPaid    InstallmentState = "paid"
)

// DisbursementSequence is the sequence number of the non-payable
// disbursement marker created at origination.
const DisbursementSequence = 0

// Installment is one scheduled obligation in a loan's amortization plan.
// All installments for a loan are created at origination and mutated in
// place afterwards; they are never deleted. PriorBalance and NewBalance are
// display fields fully rewritten on every recalculation.
type Installment struct {
	ID                 string
	LoanAccountID      string
	SequenceNumber     int
	DueAmount          decimal.Decimal
	AmortizedPrincipal decimal.Decimal
	State              InstallmentState
	PaymentDate        *time.Time
	PriorBalance       decimal.Decimal
	NewBalance         decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsPayable reports whether the installment can still receive money.
func (i *Installment) IsPayable() bool {
	return i.State != InstallmentPaid && i.DueAmount.GreaterThan(decimal.Zero)
}

// MarkPaid transitions the installment to its terminal state.
// There is no transition back to pending.
func (i *Installment) MarkPaid(date time.Time) {
	i.State = InstallmentPaid
	d := date
	i.PaymentDate = &d
}
