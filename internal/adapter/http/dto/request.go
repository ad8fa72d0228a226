package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

// OriginateLoanRequest represents a request to originate a loan.
type OriginateLoanRequest struct {
	ReferenceCode      string            `json:"reference_code"`
	BorrowerIdentifier string            `json:"borrower_identifier"`
	Principal          decimal.Decimal   `json:"principal"`
	AnnualInterestRate decimal.Decimal   `json:"annual_interest_rate"`
	TermMonths         int               `json:"term_months"`
	OriginationDate    *time.Time        `json:"origination_date,omitempty"`
	InstallmentAmounts []decimal.Decimal `json:"installment_amounts,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *OriginateLoanRequest) ToUseCaseInput() usecase.OriginateLoanInput {
	return usecase.OriginateLoanInput{
		ReferenceCode:      r.ReferenceCode,
		BorrowerIdentifier: r.BorrowerIdentifier,
		Principal:          r.Principal,
		AnnualInterestRate: r.AnnualInterestRate,
		TermMonths:         r.TermMonths,
		OriginationDate:    r.OriginationDate,
		InstallmentAmounts: r.InstallmentAmounts,
	}
}

// ApplyPaymentRequest represents a request to apply a payment.
// Either loan_account_id or loan_reference identifies the loan.
type ApplyPaymentRequest struct {
	LoanAccountID     string          `json:"loan_account_id,omitempty"`
	LoanReference     string          `json:"loan_reference,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	TransactionDate   *time.Time      `json:"transaction_date,omitempty"`
	ExternalReference string          `json:"external_reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ApplyPaymentRequest) ToUseCaseInput() usecase.ApplyPaymentInput {
	return usecase.ApplyPaymentInput{
		LoanAccountID:     r.LoanAccountID,
		LoanReference:     r.LoanReference,
		Amount:            r.Amount,
		TransactionDate:   r.TransactionDate,
		Source:            domain.PaymentSourceManual,
		ExternalReference: r.ExternalReference,
	}
}

// BulkPaymentRequest represents a raw batch of payment rows. Rows arrive in
// file order; the first row is the header.
type BulkPaymentRequest struct {
	Rows []BulkRowItem `json:"rows"`
}

// BulkRowItem represents a single raw row.
type BulkRowItem struct {
	Identifier string `json:"identifier"`
	Amount     string `json:"amount"`
}

// ToUseCaseRows converts to use case rows.
func (r *BulkPaymentRequest) ToUseCaseRows() []usecase.BulkRow {
	rows := make([]usecase.BulkRow, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = usecase.BulkRow{
			RawIdentifier: row.Identifier,
			RawAmount:     row.Amount,
		}
	}
	return rows
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
