package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
)

// LoanUseCase handles loan origination and read access.
type LoanUseCase struct {
	txManager       TransactionManager
	loanRepo        LoanRepository
	installmentRepo InstallmentRepository
	outboxRepo      OutboxRepository
	idGen           IDGenerator
	cache           Cache
}

// NewLoanUseCase creates a new LoanUseCase. cache may be nil.
func NewLoanUseCase(
	txManager TransactionManager,
	loanRepo LoanRepository,
	installmentRepo InstallmentRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	cache Cache,
) *LoanUseCase {
	return &LoanUseCase{
		txManager:       txManager,
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		outboxRepo:      outboxRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// OriginateLoanInput represents input for originating a loan.
// InstallmentAmounts carries the precomputed due amount per period; when
// empty the principal is split evenly across the term.
type OriginateLoanInput struct {
	ReferenceCode      string
	BorrowerIdentifier string
	Principal          decimal.Decimal
	AnnualInterestRate decimal.Decimal
	TermMonths         int
	OriginationDate    *time.Time
	InstallmentAmounts []decimal.Decimal
}

// OriginateLoan creates a loan account together with its full installment
// schedule (disbursement marker plus payable periods) in one transaction.
func (uc *LoanUseCase) OriginateLoan(ctx context.Context, input OriginateLoanInput) (*domain.LoanAccount, error) {
	now := time.Now().UTC()

	originationDate := now
	if input.OriginationDate != nil {
		originationDate = input.OriginationDate.UTC()
	}

	loan := &domain.LoanAccount{
		ID:                 uc.idGen.Generate(),
		ReferenceCode:      input.ReferenceCode,
		BorrowerIdentifier: input.BorrowerIdentifier,
		Principal:          domain.RoundMoney(input.Principal),
		AnnualInterestRate: input.AnnualInterestRate,
		TermMonths:         input.TermMonths,
		OriginationDate:    originationDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := loan.ValidateOrigination(); err != nil {
		return nil, err
	}

	installments, err := domain.BuildSchedule(loan, input.InstallmentAmounts, now)
	if err != nil {
		return nil, err
	}

	for _, inst := range installments {
		inst.ID = uc.idGen.Generate()
	}

	// Seed the ledger fields and the derived aggregate before persisting.
	domain.RecalculateBalances(loan, installments)

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.loanRepo.Create(ctx, tx, loan); err != nil {
		return nil, err
	}

	if err := uc.installmentRepo.CreateBatch(ctx, tx, installments); err != nil {
		return nil, err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   loan.ID,
			AggregateType: domain.AggregateTypeLoan,
			EventType:     domain.EventTypeLoanOriginated,
			Payload: domain.MarshalState(domain.LoanOriginatedEvent{
				LoanAccountID: loan.ID,
				LoanReference: loan.ReferenceCode,
				Principal:     loan.Principal.String(),
				TermMonths:    loan.TermMonths,
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

	return loan, nil
}

// GetLoan retrieves a loan by ID, cache-aside.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*domain.LoanAccount, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, loanCacheKey(id)); err == nil {
			var loan domain.LoanAccount
			if err := json.Unmarshal([]byte(cached), &loan); err == nil {
				return &loan, nil
			}
		}
	}

	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cacheLoan(ctx, loan)

	return loan, nil
}

// GetLoanByReference retrieves a loan by its unique reference code.
func (uc *LoanUseCase) GetLoanByReference(ctx context.Context, referenceCode string) (*domain.LoanAccount, error) {
	return uc.loanRepo.GetByReference(ctx, referenceCode)
}

// GetLedger returns the loan together with its full installment ledger,
// ordered ascending by sequence number.
func (uc *LoanUseCase) GetLedger(ctx context.Context, id string) (*domain.LoanAccount, []*domain.Installment, error) {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	installments, err := uc.installmentRepo.ListByLoan(ctx, loan.ID)
	if err != nil {
		return nil, nil, err
	}

	return loan, installments, nil
}

// ListLoansInput represents input for listing loans.
type ListLoansInput struct {
	Limit  int
	Offset int
}

// ListLoans lists loans with pagination.
func (uc *LoanUseCase) ListLoans(ctx context.Context, input ListLoansInput) ([]*domain.LoanAccount, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.loanRepo.List(ctx, limit, offset)
}

func (uc *LoanUseCase) cacheLoan(ctx context.Context, loan *domain.LoanAccount) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(loan)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, loanCacheKey(loan.ID), string(data), LoanCacheTTL); err != nil {
		log.Debug().Err(err).Str("loan_id", loan.ID).Msg("loan cache write failed")
	}
}

func loanCacheKey(id string) string {
	return "loan:" + id
}
