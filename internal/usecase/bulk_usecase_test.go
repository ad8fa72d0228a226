package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
	"github.com/iho/loanledger/internal/usecase/mocks"
)

type bulkFixture struct {
	*paymentFixture
	uc        *usecase.BulkUseCase
	auditRepo *mocks.MockAuditRepository
}

func newBulkFixture(maxRows int) *bulkFixture {
	pf := newPaymentFixture()
	auditRepo := mocks.NewMockAuditRepository()
	return &bulkFixture{
		paymentFixture: pf,
		uc:             usecase.NewBulkUseCase(pf.loanRepo, pf.uc, auditRepo, mocks.NewMockIDGenerator(), maxRows),
		auditRepo:      auditRepo,
	}
}

func TestProcessBatch_MixedOutcomes(t *testing.T) {
	f := newBulkFixture(0)
	f.seedLoan("loan-1", "LN-001", "123456789", "50.00")

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{RawIdentifier: "identifier", RawAmount: "amount"},
		{RawIdentifier: "123456789", RawAmount: "50,00"},
		{RawIdentifier: "", RawAmount: "10"},
		{RawIdentifier: "999999999", RawAmount: "30"},
	})

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 3, "header row never appears in the report")

	assert.Equal(t, usecase.RowApplied, report.Outcomes[0].Status)
	assert.Equal(t, 2, report.Outcomes[0].Line)
	assert.Equal(t, "LN-001", report.Outcomes[0].LoanReference)
	assert.NotEmpty(t, report.Outcomes[0].PaymentID)

	assert.Equal(t, usecase.RowSkipped, report.Outcomes[1].Status)
	assert.Equal(t, usecase.RowNotFound, report.Outcomes[2].Status)

	assert.Equal(t, 1, report.Counts[usecase.RowApplied])
	assert.Equal(t, 1, report.Counts[usecase.RowSkipped])
	assert.Equal(t, 1, report.Counts[usecase.RowNotFound])
}

func TestProcessBatch_ResolveFailureIsNotNotFound(t *testing.T) {
	f := newBulkFixture(0)
	f.loanRepo.ResolveByBorrowerIdentifierFunc = func(ctx context.Context, raw, normalized string) (*domain.LoanAccount, error) {
		return nil, errors.New("connection refused")
	}

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{},
		{RawIdentifier: "123456789", RawAmount: "50,00"},
	})

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)

	assert.Equal(t, usecase.RowPaidOrError, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Detail, "connection refused")
	assert.Equal(t, 0, report.Counts[usecase.RowNotFound])
	assert.Equal(t, 1, report.Counts[usecase.RowPaidOrError])
}

func TestProcessBatch_CommaDecimalAndFormattedIdentifier(t *testing.T) {
	f := newBulkFixture(0)
	f.seedLoan("loan-1", "LN-001", "123456789", "100.00")

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{},
		{RawIdentifier: "123.456.789", RawAmount: "40,50"},
	})

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	require.Equal(t, usecase.RowApplied, report.Outcomes[0].Status)

	records := f.paymentRepo.All()
	require.Len(t, records, 1)
	assert.Equal(t, "40.5", records[0].AppliedAmount.String())
}

func TestProcessBatch_ZeroAndMalformedAmounts(t *testing.T) {
	f := newBulkFixture(0)
	f.seedLoan("loan-1", "LN-001", "123456789", "100.00")

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{},
		{RawIdentifier: "123456789", RawAmount: "0"},
		{RawIdentifier: "123456789", RawAmount: "abc"},
		{RawIdentifier: "123456789", RawAmount: "-5,00"},
	})

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 3)

	for _, outcome := range report.Outcomes {
		assert.Equal(t, usecase.RowZeroAmount, outcome.Status)
	}
	assert.Empty(t, f.paymentRepo.All())
}

func TestProcessBatch_PaidLoanRowDoesNotAbortBatch(t *testing.T) {
	f := newBulkFixture(0)
	f.seedLoan("loan-1", "LN-001", "123456789", "50.00")
	f.seedLoan("loan-2", "LN-002", "555000111", "80.00")

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{},
		{RawIdentifier: "123456789", RawAmount: "50"},
		{RawIdentifier: "123456789", RawAmount: "25"},
		{RawIdentifier: "555000111", RawAmount: "80"},
	})

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 3)

	assert.Equal(t, usecase.RowApplied, report.Outcomes[0].Status)
	assert.Equal(t, usecase.RowPaidOrError, report.Outcomes[1].Status,
		"a fully paid loan absorbs nothing, the row reports and the batch continues")
	assert.Equal(t, usecase.RowApplied, report.Outcomes[2].Status)

	assert.Len(t, f.paymentRepo.All(), 2)
}

func TestProcessBatch_ExternalReferenceCarriesBatchAndLine(t *testing.T) {
	f := newBulkFixture(0)
	f.seedLoan("loan-1", "LN-001", "123456789", "100.00")

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{},
		{RawIdentifier: "123456789", RawAmount: "10"},
	})

	require.NoError(t, err)

	records := f.paymentRepo.All()
	require.Len(t, records, 1)
	assert.Equal(t, report.BatchID+":2", records[0].ExternalReference)
}

func TestProcessBatch_HeaderOnly(t *testing.T) {
	f := newBulkFixture(0)

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{RawIdentifier: "identifier", RawAmount: "amount"},
	})

	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

func TestProcessBatch_EnforcesRowCap(t *testing.T) {
	f := newBulkFixture(2)

	_, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{}, {RawIdentifier: "1", RawAmount: "1"}, {RawIdentifier: "2", RawAmount: "2"},
	})

	assert.Error(t, err)
}

func TestProcessBatch_WritesAuditLog(t *testing.T) {
	f := newBulkFixture(0)
	f.seedLoan("loan-1", "LN-001", "123456789", "50.00")

	report, err := f.uc.ProcessBatch(context.Background(), []usecase.BulkRow{
		{RawIdentifier: "identifier", RawAmount: "amount"},
		{RawIdentifier: "123456789", RawAmount: "50,00"},
	})

	require.NoError(t, err)

	logs := f.auditRepo.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, string(domain.AuditActionBulkProcess), logs[0].Action)
	assert.Equal(t, "batch", logs[0].ResourceType)
	assert.Equal(t, report.BatchID, logs[0].ResourceID)
	assert.Equal(t, string(domain.AuditStatusSuccess), logs[0].Status)
}
