package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

// LoanResponse represents a loan account in API responses.
type LoanResponse struct {
	ID                 string          `json:"id"`
	ReferenceCode      string          `json:"reference_code"`
	BorrowerIdentifier string          `json:"borrower_identifier"`
	Principal          decimal.Decimal `json:"principal"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate"`
	TermMonths         int             `json:"term_months"`
	OriginationDate    time.Time       `json:"origination_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// LoanFromDomain converts a domain loan account to a response.
func LoanFromDomain(loan *domain.LoanAccount) LoanResponse {
	return LoanResponse{
		ID:                 loan.ID,
		ReferenceCode:      loan.ReferenceCode,
		BorrowerIdentifier: loan.BorrowerIdentifier,
		Principal:          loan.Principal,
		OutstandingBalance: loan.OutstandingBalance,
		AnnualInterestRate: loan.AnnualInterestRate,
		TermMonths:         loan.TermMonths,
		OriginationDate:    loan.OriginationDate,
		CreatedAt:          loan.CreatedAt,
		UpdatedAt:          loan.UpdatedAt,
	}
}

// LoansFromDomain converts a slice of domain loans.
func LoansFromDomain(loans []*domain.LoanAccount) []LoanResponse {
	items := make([]LoanResponse, len(loans))
	for i, loan := range loans {
		items[i] = LoanFromDomain(loan)
	}
	return items
}

// InstallmentResponse represents a ledger line in API responses.
type InstallmentResponse struct {
	ID                 string          `json:"id"`
	SequenceNumber     int             `json:"sequence_number"`
	DueAmount          decimal.Decimal `json:"due_amount"`
	AmortizedPrincipal decimal.Decimal `json:"amortized_principal"`
	State              string          `json:"state"`
	PaymentDate        *time.Time      `json:"payment_date,omitempty"`
	PriorBalance       decimal.Decimal `json:"prior_balance"`
	NewBalance         decimal.Decimal `json:"new_balance"`
}

// InstallmentFromDomain converts a domain installment to a response.
func InstallmentFromDomain(inst *domain.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                 inst.ID,
		SequenceNumber:     inst.SequenceNumber,
		DueAmount:          inst.DueAmount,
		AmortizedPrincipal: inst.AmortizedPrincipal,
		State:              string(inst.State),
		PaymentDate:        inst.PaymentDate,
		PriorBalance:       inst.PriorBalance,
		NewBalance:         inst.NewBalance,
	}
}

// InstallmentsFromDomain converts a slice of domain installments.
func InstallmentsFromDomain(installments []*domain.Installment) []InstallmentResponse {
	items := make([]InstallmentResponse, len(installments))
	for i, inst := range installments {
		items[i] = InstallmentFromDomain(inst)
	}
	return items
}

// LedgerResponse is a loan together with its full installment schedule.
type LedgerResponse struct {
	Loan         LoanResponse          `json:"loan"`
	Installments []InstallmentResponse `json:"installments"`
}

// LedgerFromDomain converts a loan and its installments to a response.
func LedgerFromDomain(loan *domain.LoanAccount, installments []*domain.Installment) LedgerResponse {
	return LedgerResponse{
		Loan:         LoanFromDomain(loan),
		Installments: InstallmentsFromDomain(installments),
	}
}

// PaymentResponse represents an applied payment in API responses.
type PaymentResponse struct {
	ID                       string          `json:"id"`
	LoanAccountID            string          `json:"loan_account_id"`
	AppliedAmount            decimal.Decimal `json:"applied_amount"`
	UnappliedAmount          decimal.Decimal `json:"unapplied_amount"`
	FirstInstallmentAffected int             `json:"first_installment_affected"`
	DueAmountSnapshot        decimal.Decimal `json:"due_amount_snapshot"`
	ResultingBalance         decimal.Decimal `json:"resulting_balance"`
	Source                   string          `json:"source"`
	ExternalReference        string          `json:"external_reference,omitempty"`
	TransactionDate          time.Time       `json:"transaction_date"`
	CreatedAt                time.Time       `json:"created_at"`
}

// PaymentFromDomain converts a domain payment record to a response.
func PaymentFromDomain(payment *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:                       payment.ID,
		LoanAccountID:            payment.LoanAccountID,
		AppliedAmount:            payment.AppliedAmount,
		UnappliedAmount:          payment.UnappliedAmount,
		FirstInstallmentAffected: payment.FirstInstallmentAffected,
		DueAmountSnapshot:        payment.DueAmountSnapshot,
		ResultingBalance:         payment.ResultingBalance,
		Source:                   string(payment.Source),
		ExternalReference:        payment.ExternalReference,
		TransactionDate:          payment.TransactionDate,
		CreatedAt:                payment.CreatedAt,
	}
}

// PaymentsFromDomain converts a slice of domain payments.
func PaymentsFromDomain(payments []*domain.PaymentRecord) []PaymentResponse {
	items := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		items[i] = PaymentFromDomain(payment)
	}
	return items
}

// ApplyPaymentResponse wraps a payment application outcome. Applied is
// false when the loan had no pending debt and the payment was a no-op.
type ApplyPaymentResponse struct {
	Applied bool             `json:"applied"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// PaymentOutcomeFromDomain converts a possibly-nil payment record.
func PaymentOutcomeFromDomain(payment *domain.PaymentRecord) ApplyPaymentResponse {
	if payment == nil {
		return ApplyPaymentResponse{Applied: false}
	}

	resp := PaymentFromDomain(payment)

	return ApplyPaymentResponse{Applied: true, Payment: &resp}
}

// RowOutcomeResponse represents a single bulk row result.
type RowOutcomeResponse struct {
	Line          int    `json:"line"`
	Identifier    string `json:"identifier,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Status        string `json:"status"`
	LoanReference string `json:"loan_reference,omitempty"`
	PaymentID     string `json:"payment_id,omitempty"`
	Detail        string `json:"detail,omitempty"`
}

// BatchReportResponse represents the outcome of a bulk batch.
type BatchReportResponse struct {
	BatchID  string               `json:"batch_id"`
	Counts   map[string]int       `json:"counts"`
	Outcomes []RowOutcomeResponse `json:"outcomes"`
}

// BatchReportFromUseCase converts a batch report to a response.
func BatchReportFromUseCase(report *usecase.BatchReport) BatchReportResponse {
	outcomes := make([]RowOutcomeResponse, len(report.Outcomes))
	for i, o := range report.Outcomes {
		outcomes[i] = RowOutcomeResponse{
			Line:          o.Line,
			Identifier:    o.Identifier,
			Amount:        o.Amount,
			Status:        string(o.Status),
			LoanReference: o.LoanReference,
			PaymentID:     o.PaymentID,
			Detail:        o.Detail,
		}
	}

	counts := make(map[string]int, len(report.Counts))
	for status, n := range report.Counts {
		counts[string(status)] = n
	}

	return BatchReportResponse{
		BatchID:  report.BatchID,
		Counts:   counts,
		Outcomes: outcomes,
	}
}

// ReconciliationResponse represents a single loan consistency check.
type ReconciliationResponse struct {
	LoanAccountID     string          `json:"loan_account_id"`
	ReferenceCode     string          `json:"reference_code"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	IsReconciled      bool            `json:"is_reconciled"`
	OverAmortized     bool            `json:"over_amortized"`
	LastChecked       time.Time       `json:"last_checked"`
}

// ReconciliationFromUseCase converts a single check result to a response.
func ReconciliationFromUseCase(result *usecase.ReconciliationResult) ReconciliationResponse {
	return ReconciliationResponse{
		LoanAccountID:     result.LoanAccountID,
		ReferenceCode:     result.ReferenceCode,
		RecordedBalance:   result.RecordedBalance,
		CalculatedBalance: result.CalculatedBalance,
		Difference:        result.Difference,
		IsReconciled:      result.IsReconciled,
		OverAmortized:     result.OverAmortized,
		LastChecked:       result.LastChecked,
	}
}

// ReconciliationReportResponse represents a book-wide consistency report.
type ReconciliationReportResponse struct {
	TotalLoans      int                      `json:"total_loans"`
	ReconciledLoans int                      `json:"reconciled_loans"`
	Consistent      bool                     `json:"consistent"`
	Discrepancies   []ReconciliationResponse `json:"discrepancies"`
	CheckedAt       time.Time                `json:"checked_at"`
}

// ReconciliationReportFromUseCase converts a book-wide report to a response.
func ReconciliationReportFromUseCase(report *usecase.ReconciliationReport) ReconciliationReportResponse {
	discrepancies := make([]ReconciliationResponse, len(report.Discrepancies))
	for i, d := range report.Discrepancies {
		discrepancies[i] = ReconciliationFromUseCase(d)
	}

	return ReconciliationReportResponse{
		TotalLoans:      report.TotalLoans,
		ReconciledLoans: report.ReconciledLoans,
		Consistent:      report.Consistent,
		Discrepancies:   discrepancies,
		CheckedAt:       report.CheckedAt,
	}
}

// ListLoansResponse represents a paginated list of loans.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
	Total int64          `json:"total"`
}

// ListPaymentsResponse represents a paginated list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
