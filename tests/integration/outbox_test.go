package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/adapter/repository/postgres"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
	"github.com/iho/loanledger/tests/testutil"
)

func TestOutboxEvents(t *testing.T) {
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
	outboxRepo := postgres.NewOutboxRepository(pool)
	idGen := postgres.NewULIDGenerator()

	paymentUC := usecase.NewPaymentUseCase(txManager, loanRepo, installmentRepo, paymentRepo, outboxRepo, idGen, nil, nil, nil)

	t.Run("payment emits an outbox event in the same transaction", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		loan := testDB.CreateTestLoan(ctx, "LN-6001", "123456789", decimal.NewFromInt(300), 3)

		record, err := paymentUC.ApplyPayment(ctx, usecase.ApplyPaymentInput{
			LoanAccountID: loan.ID,
			Amount:        decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("failed to apply payment: %v", err)
		}

		events, err := outboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}

		if len(events) != 1 {
			t.Fatalf("expected 1 unpublished event, got %d", len(events))
		}

		event := events[0]
		if event.EventType != domain.EventTypePaymentReceived {
			t.Errorf("event type = %s, want %s", event.EventType, domain.EventTypePaymentReceived)
		}

		if event.AggregateID != loan.ID {
			t.Errorf("aggregate id = %s, want %s", event.AggregateID, loan.ID)
		}

		payload, ok := event.Payload["payment_id"]
		if !ok || payload != record.ID {
			t.Errorf("payload payment_id = %v, want %s", payload, record.ID)
		}
	})

	t.Run("published events are excluded and pruned", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		loan := testDB.CreateTestLoan(ctx, "LN-6002", "987654321", decimal.NewFromInt(100), 1)

		_, err := paymentUC.ApplyPayment(ctx, usecase.ApplyPaymentInput{
			LoanAccountID: loan.ID,
			Amount:        decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("failed to apply payment: %v", err)
		}

		events, err := outboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 unpublished event, got %d", len(events))
		}

		now := time.Now().UTC()
		if err := outboxRepo.MarkPublished(ctx, events[0].ID, now); err != nil {
			t.Fatalf("failed to mark published: %v", err)
		}

		events, err = outboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected no unpublished events, got %d", len(events))
		}

		if err := outboxRepo.DeletePublished(ctx, now.Add(time.Second)); err != nil {
			t.Fatalf("failed to prune published events: %v", err)
		}

		var remaining int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox_events`).Scan(&remaining); err != nil {
			t.Fatalf("failed to count events: %v", err)
		}
		if remaining != 0 {
			t.Errorf("expected pruned outbox, got %d rows", remaining)
		}
	})
}
