package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/adapter/repository/postgres"
	"github.com/iho/loanledger/internal/usecase"
	"github.com/iho/loanledger/tests/testutil"
)

func TestConcurrentPayments(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	loanRepo := postgres.NewLoanRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	outboxRepo := postgres.NewNullOutboxRepository()
	retrier := postgres.NewRetrier()
	idGen := postgres.NewULIDGenerator()

	paymentUC := usecase.NewPaymentUseCase(txManager, loanRepo, installmentRepo, paymentRepo, outboxRepo, idGen, retrier, nil, nil)

	t.Run("concurrent payments serialize on the loan row", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		// 10 installments of 100; 10 concurrent payments of 100 should
		// settle the loan exactly.
		loan := testDB.CreateTestLoan(ctx, "LN-3001", "123456789", decimal.NewFromInt(1000), 10)

		numPayments := 10

		var (
			wg           sync.WaitGroup
			appliedCount atomic.Int32
			noopCount    atomic.Int32
			errorCount   atomic.Int32
		)

		wg.Add(numPayments)

		for range numPayments {
			go func() {
				defer wg.Done()

				record, err := paymentUC.ApplyPayment(ctx, usecase.ApplyPaymentInput{
					LoanAccountID: loan.ID,
					Amount:        decimal.NewFromInt(100),
				})

				switch {
				case err != nil:
					errorCount.Add(1)
				case record == nil:
					noopCount.Add(1)
				default:
					appliedCount.Add(1)
				}
			}()
		}

		wg.Wait()

		if errorCount.Load() != 0 {
			t.Fatalf("expected no errors, got %d", errorCount.Load())
		}

		if appliedCount.Load() != 10 {
			t.Errorf("applied = %d, noop = %d, want 10 applied", appliedCount.Load(), noopCount.Load())
		}

		final, err := loanRepo.GetByID(ctx, loan.ID)
		if err != nil {
			t.Fatalf("failed to reload loan: %v", err)
		}

		if !final.OutstandingBalance.IsZero() {
			t.Errorf("outstanding balance = %s, want 0", final.OutstandingBalance)
		}

		installments, err := installmentRepo.ListByLoan(ctx, loan.ID)
		if err != nil {
			t.Fatalf("failed to list installments: %v", err)
		}

		for _, inst := range installments {
			if inst.State != "paid" {
				t.Errorf("installment %d state = %s, want paid", inst.SequenceNumber, inst.State)
			}
		}
	})

	t.Run("payments beyond the debt become no-ops", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		loan := testDB.CreateTestLoan(ctx, "LN-3002", "987654321", decimal.NewFromInt(200), 2)

		numPayments := 5

		var (
			wg           sync.WaitGroup
			appliedTotal atomic.Int64
			noopCount    atomic.Int32
		)

		wg.Add(numPayments)

		for range numPayments {
			go func() {
				defer wg.Done()

				record, err := paymentUC.ApplyPayment(ctx, usecase.ApplyPaymentInput{
					LoanAccountID: loan.ID,
					Amount:        decimal.NewFromInt(100),
				})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}

				if record == nil {
					noopCount.Add(1)
					return
				}

				appliedTotal.Add(record.AppliedAmount.IntPart())
			}()
		}

		wg.Wait()

		if appliedTotal.Load() != 200 {
			t.Errorf("applied total = %d, want 200", appliedTotal.Load())
		}

		if noopCount.Load() != 3 {
			t.Errorf("noop count = %d, want 3", noopCount.Load())
		}

		final, err := loanRepo.GetByID(ctx, loan.ID)
		if err != nil {
			t.Fatalf("failed to reload loan: %v", err)
		}

		if !final.OutstandingBalance.IsZero() {
			t.Errorf("outstanding balance = %s, want 0", final.OutstandingBalance)
		}
	})
}
