package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/infrastructure/postgres/generated"
	"github.com/iho/loanledger/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a payment record within a transaction.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.PaymentRecord) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreatePayment(ctx, generated.CreatePaymentParams{
		ID:                       record.ID,
		LoanAccountID:            record.LoanAccountID,
		AppliedAmount:            decimalToNumeric(record.AppliedAmount),
		UnappliedAmount:          decimalToNumeric(record.UnappliedAmount),
		FirstInstallmentAffected: int32(record.FirstInstallmentAffected),
		DueAmountSnapshot:        decimalToNumeric(record.DueAmountSnapshot),
		ResultingBalance:         decimalToNumeric(record.ResultingBalance),
		Source:                   string(record.Source),
		ExternalReference:        record.ExternalReference,
		TransactionDate:          timeToPgTimestamptz(record.TransactionDate),
		CreatedAt:                timeToPgTimestamptz(record.CreatedAt),
	})

	return err
}

// GetByID retrieves a payment record by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	row, err := r.queries.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return rowToPayment(row), nil
}

// ListByLoan lists payment records for a loan, newest first.
func (r *PaymentRepository) ListByLoan(ctx context.Context, loanAccountID string, limit, offset int) ([]*domain.PaymentRecord, error) {
	rows, err := r.queries.ListPaymentsByLoan(ctx, generated.ListPaymentsByLoanParams{
		LoanAccountID: loanAccountID,
		Limit:         int32(limit),
		Offset:        int32(offset),
	})
	if err != nil {
		return nil, err
	}

	records := make([]*domain.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToPayment(row))
	}

	return records, nil
}

func rowToPayment(row generated.Payment) *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:                       row.ID,
		LoanAccountID:            row.LoanAccountID,
		AppliedAmount:            numericToDecimal(row.AppliedAmount),
		UnappliedAmount:          numericToDecimal(row.UnappliedAmount),
		FirstInstallmentAffected: int(row.FirstInstallmentAffected),
		DueAmountSnapshot:        numericToDecimal(row.DueAmountSnapshot),
		ResultingBalance:         numericToDecimal(row.ResultingBalance),
		Source:                   domain.PaymentSource(row.Source),
		ExternalReference:        row.ExternalReference,
		TransactionDate:          row.TransactionDate.Time,
		CreatedAt:                row.CreatedAt.Time,
	}
}
