package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
)

// LoanRepository defines data access for loan accounts.
type LoanRepository interface {
	Create(ctx context.Context, tx Transaction, loan *domain.LoanAccount) error
	GetByID(ctx context.Context, id string) (*domain.LoanAccount, error)
	GetByReference(ctx context.Context, referenceCode string) (*domain.LoanAccount, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.LoanAccount, error)
	// ResolveByBorrowerIdentifier matches either the raw or the normalized
	// identifier, preferring the most recently originated loan.
	ResolveByBorrowerIdentifier(ctx context.Context, raw, normalized string) (*domain.LoanAccount, error)
	UpdateOutstandingBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.LoanAccount, error)
}

// InstallmentRepository defines data access for installment schedules.
type InstallmentRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, installments []*domain.Installment) error
	ListByLoan(ctx context.Context, loanAccountID string) ([]*domain.Installment, error)
	// ListByLoanForUpdate loads the schedule inside the transaction holding
	// the loan row lock, ordered ascending by sequence number.
	ListByLoanForUpdate(ctx context.Context, tx Transaction, loanAccountID string) ([]*domain.Installment, error)
	UpdateAllocation(ctx context.Context, tx Transaction, installment *domain.Installment) error
	UpdateBalances(ctx context.Context, tx Transaction, installment *domain.Installment) error
}

// PaymentRepository defines data access for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.PaymentRecord) error
	GetByID(ctx context.Context, id string) (*domain.PaymentRecord, error)
	ListByLoan(ctx context.Context, loanAccountID string, limit, offset int) ([]*domain.PaymentRecord, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient serialization failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
