package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
	"github.com/iho/loanledger/internal/usecase/mocks"
)

func TestPaymentUseCase_GetPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentRepo := mocks.NewMockGenPaymentRepository(ctrl)
	paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(&domain.PaymentRecord{
		ID:            "pay-1",
		LoanAccountID: "loan-1",
		AppliedAmount: decimal.NewFromInt(100),
	}, nil)

	uc := usecase.NewPaymentUseCase(nil, nil, nil, paymentRepo, nil, nil, nil, nil, nil)

	record, err := uc.GetPayment(context.Background(), "pay-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.ID != "pay-1" {
		t.Errorf("expected payment pay-1, got %s", record.ID)
	}
}

func TestPaymentUseCase_ListPaymentsByLoan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentRepo := mocks.NewMockGenPaymentRepository(ctrl)
	paymentRepo.EXPECT().ListByLoan(gomock.Any(), "loan-1", 10, 0).Return([]*domain.PaymentRecord{
		{ID: "p1", LoanAccountID: "loan-1", AppliedAmount: decimal.NewFromInt(100)},
		{ID: "p2", LoanAccountID: "loan-1", AppliedAmount: decimal.NewFromInt(50)},
	}, nil)

	uc := usecase.NewPaymentUseCase(nil, nil, nil, paymentRepo, nil, nil, nil, nil, nil)

	records, err := uc.ListPaymentsByLoan(context.Background(), usecase.ListPaymentsByLoanInput{
		LoanAccountID: "loan-1",
		Limit:         10,
		Offset:        0,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Errorf("expected 2 payments, got %d", len(records))
	}
}

func TestPaymentUseCase_ListPaymentsByLoanClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentRepo := mocks.NewMockGenPaymentRepository(ctrl)
	paymentRepo.EXPECT().ListByLoan(gomock.Any(), "loan-1", 50, 0).Return(nil, nil)

	uc := usecase.NewPaymentUseCase(nil, nil, nil, paymentRepo, nil, nil, nil, nil, nil)

	_, err := uc.ListPaymentsByLoan(context.Background(), usecase.ListPaymentsByLoanInput{
		LoanAccountID: "loan-1",
		Limit:         -5,
		Offset:        -1,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
