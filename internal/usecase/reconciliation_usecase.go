package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
)

// ReconciliationUseCase verifies the derived-balance invariants across the
// whole book of loans.
type ReconciliationUseCase struct {
	loanRepo        LoanRepository
	installmentRepo InstallmentRepository
}

// NewReconciliationUseCase creates a new reconciliation use case.
func NewReconciliationUseCase(loanRepo LoanRepository, installmentRepo InstallmentRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
	}
}

// ReconciliationResult represents the result of checking one loan.
type ReconciliationResult struct {
	LoanAccountID     string
	ReferenceCode     string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	OverAmortized     bool
	LastChecked       time.Time
}

// ReconcileLoan re-derives a loan's outstanding balance from its schedule
// and compares it against the stored aggregate.
func (uc *ReconciliationUseCase) ReconcileLoan(ctx context.Context, loanID string) (*ReconciliationResult, error) {
	loan, err := uc.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	installments, err := uc.installmentRepo.ListByLoan(ctx, loan.ID)
	if err != nil {
		return nil, err
	}

	recorded := loan.OutstandingBalance

	// Recompute on the in-memory copy only; reconciliation never writes.
	result := domain.RecalculateBalances(loan, installments)

	difference := recorded.Sub(result.OutstandingBalance)

	return &ReconciliationResult{
		LoanAccountID:     loan.ID,
		ReferenceCode:     loan.ReferenceCode,
		RecordedBalance:   recorded,
		CalculatedBalance: result.OutstandingBalance,
		Difference:        difference,
		IsReconciled:      difference.IsZero() && !result.OverAmortized,
		OverAmortized:     result.OverAmortized,
		LastChecked:       time.Now().UTC(),
	}, nil
}

// ReconciliationReport represents a full reconciliation report.
type ReconciliationReport struct {
	TotalLoans      int
	ReconciledLoans int
	Discrepancies   []*ReconciliationResult
	Consistent      bool
	CheckedAt       time.Time
}

// GenerateReconciliationReport checks every loan in the book.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context) (*ReconciliationReport, error) {
	limit, offset := domain.ValidatePagination(10000, 0)

	loans, err := uc.loanRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		TotalLoans:    len(loans),
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for _, loan := range loans {
		result, err := uc.ReconcileLoan(ctx, loan.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile loan %s: %w", loan.ID, err)
		}

		if result.IsReconciled {
			report.ReconciledLoans++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	report.Consistent = len(report.Discrepancies) == 0

	return report, nil
}
