package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/infrastructure/postgres/generated"
	"github.com/iho/loanledger/internal/usecase"
)

// InstallmentRepository implements usecase.InstallmentRepository.
type InstallmentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewInstallmentRepository creates a new InstallmentRepository.
func NewInstallmentRepository(pool *pgxpool.Pool) *InstallmentRepository {
	return &InstallmentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateBatch persists a full schedule within a transaction.
func (r *InstallmentRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, installments []*domain.Installment) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	for _, inst := range installments {
		_, err := queries.CreateInstallment(ctx, generated.CreateInstallmentParams{
			ID:                 inst.ID,
			LoanAccountID:      inst.LoanAccountID,
			SequenceNumber:     int32(inst.SequenceNumber),
			DueAmount:          decimalToNumeric(inst.DueAmount),
			AmortizedPrincipal: decimalToNumeric(inst.AmortizedPrincipal),
			State:              string(inst.State),
			PaymentDate:        timePtrToPgTimestamptz(inst.PaymentDate),
			PriorBalance:       decimalToNumeric(inst.PriorBalance),
			NewBalance:         decimalToNumeric(inst.NewBalance),
			CreatedAt:          timeToPgTimestamptz(inst.CreatedAt),
			UpdatedAt:          timeToPgTimestamptz(inst.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// ListByLoan lists a loan's installments ordered by sequence number.
func (r *InstallmentRepository) ListByLoan(ctx context.Context, loanAccountID string) ([]*domain.Installment, error) {
	rows, err := r.queries.ListInstallmentsByLoan(ctx, loanAccountID)
	if err != nil {
		return nil, err
	}

	return rowsToInstallments(rows), nil
}

// ListByLoanForUpdate lists the schedule with FOR UPDATE locks, inside the
// transaction that already holds the loan row lock.
func (r *InstallmentRepository) ListByLoanForUpdate(ctx context.Context, tx usecase.Transaction, loanAccountID string) ([]*domain.Installment, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.ListInstallmentsByLoanForUpdate(ctx, loanAccountID)
	if err != nil {
		return nil, err
	}

	return rowsToInstallments(rows), nil
}

// UpdateAllocation persists the allocation-facing fields of one installment.
func (r *InstallmentRepository) UpdateAllocation(ctx context.Context, tx usecase.Transaction, installment *domain.Installment) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateInstallmentAllocation(ctx, generated.UpdateInstallmentAllocationParams{
		ID:                 installment.ID,
		DueAmount:          decimalToNumeric(installment.DueAmount),
		AmortizedPrincipal: decimalToNumeric(installment.AmortizedPrincipal),
		State:              string(installment.State),
		PaymentDate:        timePtrToPgTimestamptz(installment.PaymentDate),
		UpdatedAt:          timeToPgTimestamptz(installment.UpdatedAt),
	})
}

// UpdateBalances persists the recomputed ledger balances of one installment.
func (r *InstallmentRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, installment *domain.Installment) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateInstallmentBalances(ctx, generated.UpdateInstallmentBalancesParams{
		ID:           installment.ID,
		PriorBalance: decimalToNumeric(installment.PriorBalance),
		NewBalance:   decimalToNumeric(installment.NewBalance),
		UpdatedAt:    timeToPgTimestamptz(installment.UpdatedAt),
	})
}

func rowsToInstallments(rows []generated.Installment) []*domain.Installment {
	installments := make([]*domain.Installment, 0, len(rows))
	for _, row := range rows {
		installments = append(installments, rowToInstallment(row))
	}

	return installments
}

func rowToInstallment(row generated.Installment) *domain.Installment {
	var paymentDate *time.Time
	if row.PaymentDate.Valid {
		t := row.PaymentDate.Time
		paymentDate = &t
	}

	return &domain.Installment{
		ID:                 row.ID,
		LoanAccountID:      row.LoanAccountID,
		SequenceNumber:     int(row.SequenceNumber),
		DueAmount:          numericToDecimal(row.DueAmount),
		AmortizedPrincipal: numericToDecimal(row.AmortizedPrincipal),
		State:              domain.InstallmentState(row.State),
		PaymentDate:        paymentDate,
		PriorBalance:       numericToDecimal(row.PriorBalance),
		NewBalance:         numericToDecimal(row.NewBalance),
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}
