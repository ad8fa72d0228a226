package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/infrastructure/metrics"
)

// PaymentUseCase applies payments against a loan's installment schedule and
// re-derives the balance ledger, as one serializable unit per loan.
type PaymentUseCase struct {
	txManager       TransactionManager
	loanRepo        LoanRepository
	installmentRepo InstallmentRepository
	paymentRepo     PaymentRepository
	outboxRepo      OutboxRepository
	idGen           IDGenerator
	retrier         Retrier
	cache           Cache
	metrics         *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase. retrier, cache and
// metrics may be nil; the outbox repository may be a null implementation.
func NewPaymentUseCase(
	txManager TransactionManager,
	loanRepo LoanRepository,
	installmentRepo InstallmentRepository,
	paymentRepo PaymentRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	metrics *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:       txManager,
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		paymentRepo:     paymentRepo,
		outboxRepo:      outboxRepo,
		idGen:           idGen,
		retrier:         retrier,
		cache:           cache,
		metrics:         metrics,
	}
}

// ApplyPaymentInput represents input for applying a payment.
// Either LoanAccountID or LoanReference must identify the loan.
type ApplyPaymentInput struct {
	LoanAccountID     string
	LoanReference     string
	Amount            decimal.Decimal
	TransactionDate   *time.Time
	Source            domain.PaymentSource
	ExternalReference string
}

// ApplyPayment distributes the amount across the loan's pending
// installments, oldest first, recomputes the running-balance ledger and the
// aggregate outstanding balance, and records exactly one PaymentRecord.
//
// The whole operation runs inside one transaction holding an exclusive lock
// on the loan row, so two concurrent payments against the same loan
// serialize; either everything commits or nothing does.
//
// A loan with no pending debt is a benign no-op: (nil, nil) is returned and
// nothing is mutated.
func (uc *PaymentUseCase) ApplyPayment(ctx context.Context, input ApplyPaymentInput) (*domain.PaymentRecord, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if input.Source == "" {
		input.Source = domain.PaymentSourceManual
	}

	if input.Source != domain.PaymentSourceManual && input.Source != domain.PaymentSourceBulk {
		return nil, domain.ErrInvalidPaymentSource
	}

	loan, err := uc.resolveLoan(ctx, input)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var record *domain.PaymentRecord

	operation := func() error {
		record = nil

		var opErr error
		record, opErr = uc.applyLocked(ctx, loan.ID, input)

		return opErr
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, operation)
	} else {
		err = operation()
	}

	if errors.Is(err, domain.ErrNoPendingDebt) {
		log.Info().
			Str("loan_id", loan.ID).
			Str("reference", loan.ReferenceCode).
			Msg("payment against fully paid loan ignored")

		if uc.metrics != nil {
			uc.metrics.PaymentsNoOp.Inc()
		}

		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	uc.invalidateLoan(ctx, loan)

	if uc.metrics != nil {
		uc.metrics.PaymentsApplied.Inc()
		uc.metrics.PaymentDuration.Observe(time.Since(start).Seconds())
		uc.metrics.PaymentAmount.Observe(record.AppliedAmount.InexactFloat64())
		if record.UnappliedAmount.IsPositive() {
			uc.metrics.UnappliedRemains.Inc()
		}
	}

	return record, nil
}

// applyLocked performs the allocation + recomputation under the loan's row
// lock. Partial installment mutation is never committed: any error rolls
// the whole row back.
func (uc *PaymentUseCase) applyLocked(ctx context.Context, loanID string, input ApplyPaymentInput) (*domain.PaymentRecord, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	loan, err := uc.loanRepo.GetByIDForUpdate(ctx, tx, loanID)
	if err != nil {
		return nil, err
	}

	installments, err := uc.installmentRepo.ListByLoanForUpdate(ctx, tx, loan.ID)
	if err != nil {
		return nil, err
	}

	if len(installments) == 0 {
		return nil, domain.ErrEmptySchedule
	}

	now := time.Now().UTC()

	transactionDate := now
	if input.TransactionDate != nil {
		transactionDate = input.TransactionDate.UTC()
	}

	alloc, err := domain.AllocatePayment(installments, input.Amount, transactionDate)
	if err != nil {
		return nil, err
	}

	result := domain.RecalculateBalances(loan, installments)
	if result.OverAmortized {
		log.Warn().
			Str("loan_id", loan.ID).
			Str("reference", loan.ReferenceCode).
			Msg("data integrity: amortized sums exceed principal, balances clamped to zero")
	}

	paidCount := 0

	for _, inst := range alloc.Touched {
		inst.UpdatedAt = now
		if err := uc.installmentRepo.UpdateAllocation(ctx, tx, inst); err != nil {
			return nil, err
		}

		if inst.State == domain.InstallmentPaid {
			paidCount++
		}
	}

	// The ledger walk rewrites prior/new balances on every installment,
	// not just the touched ones.
	for _, inst := range installments {
		if err := uc.installmentRepo.UpdateBalances(ctx, tx, inst); err != nil {
			return nil, err
		}
	}

	err = uc.loanRepo.UpdateOutstandingBalance(ctx, tx, loan.ID, result.OutstandingBalance, now)
	if err != nil {
		return nil, err
	}

	record := &domain.PaymentRecord{
		ID:                       uc.idGen.Generate(),
		LoanAccountID:            loan.ID,
		AppliedAmount:            alloc.Applied,
		UnappliedAmount:          alloc.Unapplied,
		FirstInstallmentAffected: alloc.FirstAffected.SequenceNumber,
		DueAmountSnapshot:        alloc.DueAmountSnapshot,
		ResultingBalance:         result.OutstandingBalance,
		Source:                   input.Source,
		ExternalReference:        input.ExternalReference,
		TransactionDate:          transactionDate,
		CreatedAt:                now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := uc.paymentRepo.Create(ctx, tx, record); err != nil {
		return nil, err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   loan.ID,
			AggregateType: domain.AggregateTypeLoan,
			EventType:     domain.EventTypePaymentReceived,
			Payload: domain.MarshalState(domain.PaymentReceivedEvent{
				PaymentID:          record.ID,
				LoanAccountID:      loan.ID,
				LoanReference:      loan.ReferenceCode,
				AppliedAmount:      record.AppliedAmount.String(),
				OutstandingBalance: record.ResultingBalance.String(),
				Source:             string(record.Source),
				TransactionDate:    transactionDate.Format(time.RFC3339),
			}),
			CreatedAt: now,
		}

		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil && paidCount > 0 {
		uc.metrics.InstallmentsPaid.Add(float64(paidCount))
	}

	return record, nil
}

// GetPayment retrieves a payment record by ID.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPaymentsByLoanInput represents input for listing payment history.
type ListPaymentsByLoanInput struct {
	LoanAccountID string
	Limit         int
	Offset        int
}

// ListPaymentsByLoan lists payment records for a loan.
func (uc *PaymentUseCase) ListPaymentsByLoan(ctx context.Context, input ListPaymentsByLoanInput) ([]*domain.PaymentRecord, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.paymentRepo.ListByLoan(ctx, input.LoanAccountID, limit, offset)
}

func (uc *PaymentUseCase) resolveLoan(ctx context.Context, input ApplyPaymentInput) (*domain.LoanAccount, error) {
	if input.LoanAccountID != "" {
		return uc.loanRepo.GetByID(ctx, input.LoanAccountID)
	}

	return uc.loanRepo.GetByReference(ctx, input.LoanReference)
}

func (uc *PaymentUseCase) invalidateLoan(ctx context.Context, loan *domain.LoanAccount) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Delete(ctx, loanCacheKey(loan.ID)); err != nil {
		log.Debug().Err(err).Str("loan_id", loan.ID).Msg("loan cache invalidation failed")
	}
}
