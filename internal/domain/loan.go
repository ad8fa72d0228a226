package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanAccount represents a serviced loan with its amortization schedule.
// OutstandingBalance is derived: it is only ever overwritten by a balance
// recalculation, never patched incrementally.
type LoanAccount struct {
	ID                 string
	ReferenceCode      string
	BorrowerIdentifier string
	Principal          decimal.Decimal
	OutstandingBalance decimal.Decimal
	AnnualInterestRate decimal.Decimal
	TermMonths         int
	OriginationDate    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidateOrigination checks that a loan can be created.
func (l *LoanAccount) ValidateOrigination() error {
	if l.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrincipal
	}

	if l.TermMonths <= 0 {
		return ErrInvalidTerm
	}

	if err := ValidateReferenceCode(l.ReferenceCode); err != nil {
		return err
	}

	return nil
}
