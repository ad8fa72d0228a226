package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
)

// RowOutcomeStatus categorizes what happened to one bulk row.
type RowOutcomeStatus string

const (
	RowApplied     RowOutcomeStatus = "applied"
	RowSkipped     RowOutcomeStatus = "skipped"
	RowNotFound    RowOutcomeStatus = "not_found"
	RowZeroAmount  RowOutcomeStatus = "zero_amount"
	RowPaidOrError RowOutcomeStatus = "paid_or_error"
)

// BulkRow is one raw (identifier, amount) pair handed over by the external
// file-parsing collaborator, in original column order.
type BulkRow struct {
	RawIdentifier string
	RawAmount     string
}

// RowOutcome is the per-row result of a bulk batch.
type RowOutcome struct {
	Line          int
	Identifier    string
	Amount        string
	Status        RowOutcomeStatus
	LoanReference string
	PaymentID     string
	Detail        string
}

// BulkUseCase drives payment application for batches of raw rows.
type BulkUseCase struct {
	loanRepo  LoanRepository
	paymentUC *PaymentUseCase
	auditRepo AuditRepository
	idGen     IDGenerator
	maxRows   int
}

// NewBulkUseCase creates a new BulkUseCase. maxRows <= 0 disables the cap;
// a nil auditRepo disables audit logging.
func NewBulkUseCase(loanRepo LoanRepository, paymentUC *PaymentUseCase, auditRepo AuditRepository, idGen IDGenerator, maxRows int) *BulkUseCase {
	return &BulkUseCase{
		loanRepo:  loanRepo,
		paymentUC: paymentUC,
		auditRepo: auditRepo,
		idGen:     idGen,
		maxRows:   maxRows,
	}
}

// BatchReport is the complete outcome report for one batch.
type BatchReport struct {
	BatchID  string
	Outcomes []RowOutcome
	Counts   map[RowOutcomeStatus]int
}

// ProcessBatch processes a validated stream of raw rows. Row 1 is always
// treated as a header and skipped silently. Every remaining row is an
// independent atomic unit: one row failing never aborts the batch, no
// earlier row is rolled back, and the report covers every non-header row.
func (uc *BulkUseCase) ProcessBatch(ctx context.Context, rows []BulkRow) (*BatchReport, error) {
	if uc.maxRows > 0 && len(rows) > uc.maxRows {
		return nil, fmt.Errorf("batch of %d rows exceeds limit of %d", len(rows), uc.maxRows)
	}

	report := &BatchReport{
		BatchID: uc.idGen.Generate(),
		Counts:  make(map[RowOutcomeStatus]int),
	}

	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}

		outcome := uc.processRow(ctx, report.BatchID, i+1, row)
		report.Outcomes = append(report.Outcomes, outcome)
		report.Counts[outcome.Status]++
	}

	log.Info().
		Str("batch_id", report.BatchID).
		Int("rows", len(report.Outcomes)).
		Int("applied", report.Counts[RowApplied]).
		Int("skipped", report.Counts[RowSkipped]).
		Int("not_found", report.Counts[RowNotFound]).
		Msg("bulk batch processed")

	// Audit logging
	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			Action:       string(domain.AuditActionBulkProcess),
			ResourceType: "batch",
			ResourceID:   report.BatchID,
			AfterState:   domain.MarshalState(report.Counts),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    time.Now(),
		}
		if err := uc.auditRepo.Create(ctx, auditLog); err != nil {
			log.Error().Err(err).Str("batch_id", report.BatchID).Msg("failed to write audit log")
		}
	}

	return report, nil
}

func (uc *BulkUseCase) processRow(ctx context.Context, batchID string, line int, row BulkRow) RowOutcome {
	outcome := RowOutcome{
		Line:       line,
		Identifier: row.RawIdentifier,
		Amount:     row.RawAmount,
	}

	normalized := domain.NormalizeIdentifier(row.RawIdentifier)
	if normalized == "" || row.RawAmount == "" {
		outcome.Status = RowSkipped
		return outcome
	}

	loan, err := uc.loanRepo.ResolveByBorrowerIdentifier(ctx, row.RawIdentifier, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			outcome.Status = RowNotFound
			return outcome
		}

		log.Error().
			Err(err).
			Str("batch_id", batchID).
			Int("line", line).
			Msg("bulk row loan resolution failed")

		outcome.Status = RowPaidOrError
		outcome.Detail = err.Error()

		return outcome
	}

	outcome.LoanReference = loan.ReferenceCode

	amount := domain.ParseAmountText(row.RawAmount)
	if amount.LessThanOrEqual(decimal.Zero) {
		outcome.Status = RowZeroAmount
		return outcome
	}

	record, err := uc.paymentUC.ApplyPayment(ctx, ApplyPaymentInput{
		LoanAccountID:     loan.ID,
		Amount:            amount,
		Source:            domain.PaymentSourceBulk,
		ExternalReference: fmt.Sprintf("%s:%d", batchID, line),
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("batch_id", batchID).
			Int("line", line).
			Str("loan_reference", loan.ReferenceCode).
			Msg("bulk row failed")

		outcome.Status = RowPaidOrError
		outcome.Detail = err.Error()

		return outcome
	}

	if record == nil {
		// Loan already fully paid.
		outcome.Status = RowPaidOrError
		return outcome
	}

	outcome.Status = RowApplied
	outcome.PaymentID = record.ID

	return outcome
}
