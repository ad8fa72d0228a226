package domain

import "errors"

var (
	// Loan errors
	ErrLoanNotFound     = errors.New("loan account not found")
	ErrDuplicateLoanRef = errors.New("loan reference code already exists")
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidTerm      = errors.New("term months must be positive")

	// Payment errors
	ErrPaymentNotFound      = errors.New("payment record not found")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrNoPendingDebt        = errors.New("loan has no pending debt")
	ErrInvalidPaymentSource = errors.New("invalid payment source")

	// Schedule errors
	ErrEmptySchedule        = errors.New("loan has no installment schedule")
	ErrScheduleSumMismatch  = errors.New("schedule amounts do not sum to total due")
	ErrDuplicateSequence    = errors.New("duplicate installment sequence number")
	ErrInvalidInstallment   = errors.New("installment due amount cannot be negative")
	ErrInvalidReferenceCode = errors.New("invalid loan reference code")
)
