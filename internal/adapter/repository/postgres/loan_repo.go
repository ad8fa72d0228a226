package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/infrastructure/postgres/generated"
	"github.com/iho/loanledger/internal/usecase"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new loan account within a transaction.
func (r *LoanRepository) Create(ctx context.Context, tx usecase.Transaction, loan *domain.LoanAccount) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateLoan(ctx, generated.CreateLoanParams{
		ID:                 loan.ID,
		ReferenceCode:      loan.ReferenceCode,
		BorrowerIdentifier: loan.BorrowerIdentifier,
		Principal:          decimalToNumeric(loan.Principal),
		OutstandingBalance: decimalToNumeric(loan.OutstandingBalance),
		AnnualInterestRate: decimalToNumeric(loan.AnnualInterestRate),
		TermMonths:         int32(loan.TermMonths),
		OriginationDate:    timeToPgTimestamptz(loan.OriginationDate),
		CreatedAt:          timeToPgTimestamptz(loan.CreatedAt),
		UpdatedAt:          timeToPgTimestamptz(loan.UpdatedAt),
	})
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicateLoanRef
	}

	return err
}

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.LoanAccount, error) {
	row, err := r.queries.GetLoanByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	return rowToLoan(row), nil
}

// GetByReference retrieves a loan by its unique reference code.
func (r *LoanRepository) GetByReference(ctx context.Context, referenceCode string) (*domain.LoanAccount, error) {
	row, err := r.queries.GetLoanByReference(ctx, referenceCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	return rowToLoan(row), nil
}

// GetByIDForUpdate retrieves a loan by ID with a FOR UPDATE lock.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.LoanAccount, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetLoanByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	return rowToLoan(row), nil
}

// ResolveByBorrowerIdentifier matches a loan by either the raw or the
// normalized borrower identifier. When several loans share the identifier
// the most recently originated one with an outstanding balance wins,
// falling back to the most recently originated overall.
func (r *LoanRepository) ResolveByBorrowerIdentifier(ctx context.Context, raw, normalized string) (*domain.LoanAccount, error) {
	row, err := r.queries.ResolveLoanByBorrowerIdentifier(ctx, generated.ResolveLoanByBorrowerIdentifierParams{
		RawIdentifier:        raw,
		NormalizedIdentifier: normalized,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	return rowToLoan(row), nil
}

// UpdateOutstandingBalance overwrites the derived aggregate balance.
func (r *LoanRepository) UpdateOutstandingBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateLoanOutstandingBalance(ctx, generated.UpdateLoanOutstandingBalanceParams{
		ID:                 id,
		OutstandingBalance: decimalToNumeric(balance),
		UpdatedAt:          timeToPgTimestamptz(updatedAt),
	})
}

// List lists loans with pagination.
func (r *LoanRepository) List(ctx context.Context, limit, offset int) ([]*domain.LoanAccount, error) {
	rows, err := r.queries.ListLoans(ctx, generated.ListLoansParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	loans := make([]*domain.LoanAccount, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, rowToLoan(row))
	}

	return loans, nil
}

const pgErrUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}

func rowToLoan(row generated.Loan) *domain.LoanAccount {
	return &domain.LoanAccount{
		ID:                 row.ID,
		ReferenceCode:      row.ReferenceCode,
		BorrowerIdentifier: row.BorrowerIdentifier,
		Principal:          numericToDecimal(row.Principal),
		OutstandingBalance: numericToDecimal(row.OutstandingBalance),
		AnnualInterestRate: numericToDecimal(row.AnnualInterestRate),
		TermMonths:         int(row.TermMonths),
		OriginationDate:    row.OriginationDate.Time,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
