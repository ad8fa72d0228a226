package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSource identifies how a payment entered the system.
type PaymentSource string

const (
	PaymentSourceManual PaymentSource = "manual"
	PaymentSourceBulk   PaymentSource = "bulk"
)

// PaymentRecord is the append-only record of one accepted payment.
// Exactly one record is created per transaction regardless of how many
// installments the amount was spread across; it is never mutated afterwards.
type PaymentRecord struct {
	ID                       string
	LoanAccountID            string
	AppliedAmount            decimal.Decimal
	UnappliedAmount          decimal.Decimal
	FirstInstallmentAffected int
	DueAmountSnapshot        decimal.Decimal
	ResultingBalance         decimal.Decimal
	Source                   PaymentSource
	ExternalReference        string
	TransactionDate          time.Time
	CreatedAt                time.Time
}

// Validate validates a payment record before persistence.
func (p *PaymentRecord) Validate() error {
	if p.AppliedAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if p.Source != PaymentSourceManual && p.Source != PaymentSourceBulk {
		return ErrInvalidPaymentSource
	}

	return nil
}
