package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

type loanServiceStub struct {
	originateFn func(ctx context.Context, input usecase.OriginateLoanInput) (*domain.LoanAccount, error)
	getFn       func(ctx context.Context, id string) (*domain.LoanAccount, error)
	ledgerFn    func(ctx context.Context, id string) (*domain.LoanAccount, []*domain.Installment, error)
	listFn      func(ctx context.Context, input usecase.ListLoansInput) ([]*domain.LoanAccount, error)
}

func (s *loanServiceStub) OriginateLoan(ctx context.Context, input usecase.OriginateLoanInput) (*domain.LoanAccount, error) {
	return s.originateFn(ctx, input)
}

func (s *loanServiceStub) GetLoan(ctx context.Context, id string) (*domain.LoanAccount, error) {
	return s.getFn(ctx, id)
}

func (s *loanServiceStub) GetLedger(ctx context.Context, id string) (*domain.LoanAccount, []*domain.Installment, error) {
	return s.ledgerFn(ctx, id)
}

func (s *loanServiceStub) ListLoans(ctx context.Context, input usecase.ListLoansInput) ([]*domain.LoanAccount, error) {
	return s.listFn(ctx, input)
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestLoanHandler_Create_Success(t *testing.T) {
	loan := &domain.LoanAccount{ID: "loan-1", ReferenceCode: "LN-001", Principal: decimal.NewFromInt(1000)}
	var captured usecase.OriginateLoanInput

	handler := NewLoanHandler(&loanServiceStub{
		originateFn: func(ctx context.Context, input usecase.OriginateLoanInput) (*domain.LoanAccount, error) {
			captured = input
			return loan, nil
		},
	})

	body, _ := json.Marshal(dto.OriginateLoanRequest{
		ReferenceCode:      "LN-001",
		BorrowerIdentifier: "123456789",
		Principal:          decimal.NewFromInt(1000),
		TermMonths:         12,
	})

	req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if captured.ReferenceCode != "LN-001" || captured.TermMonths != 12 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.LoanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "loan-1" {
		t.Fatalf("expected loan ID loan-1, got %s", resp.ID)
	}
}

func TestLoanHandler_Create_InvalidBody(t *testing.T) {
	handler := NewLoanHandler(&loanServiceStub{
		originateFn: func(ctx context.Context, input usecase.OriginateLoanInput) (*domain.LoanAccount, error) {
			t.Fatal("OriginateLoan should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoanHandler_Create_DuplicateReference(t *testing.T) {
	handler := NewLoanHandler(&loanServiceStub{
		originateFn: func(ctx context.Context, input usecase.OriginateLoanInput) (*domain.LoanAccount, error) {
			return nil, domain.ErrDuplicateLoanRef
		},
	})

	body, _ := json.Marshal(dto.OriginateLoanRequest{
		ReferenceCode: "LN-001",
		Principal:     decimal.NewFromInt(1000),
		TermMonths:    12,
	})
	req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLoanHandler_Get(t *testing.T) {
	handler := NewLoanHandler(&loanServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.LoanAccount, error) {
			return &domain.LoanAccount{ID: id}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/loans/loan-1", nil)
	req = setChiURLParam(req, "id", "loan-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoanHandler_Get_NotFound(t *testing.T) {
	handler := NewLoanHandler(&loanServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.LoanAccount, error) {
			return nil, domain.ErrLoanNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/loans/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLoanHandler_GetLedger(t *testing.T) {
	handler := NewLoanHandler(&loanServiceStub{
		ledgerFn: func(ctx context.Context, id string) (*domain.LoanAccount, []*domain.Installment, error) {
			return &domain.LoanAccount{ID: id}, []*domain.Installment{
				{ID: "inst-0", SequenceNumber: 0},
				{ID: "inst-1", SequenceNumber: 1},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/loans/loan-1/ledger", nil)
	req = setChiURLParam(req, "id", "loan-1")
	rec := httptest.NewRecorder()

	handler.GetLedger(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.LedgerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Installments) != 2 {
		t.Fatalf("expected 2 installments, got %d", len(resp.Installments))
	}
}

func TestLoanHandler_List(t *testing.T) {
	handler := NewLoanHandler(&loanServiceStub{
		listFn: func(ctx context.Context, input usecase.ListLoansInput) ([]*domain.LoanAccount, error) {
			if input.Limit != 5 || input.Offset != 1 {
				t.Fatalf("unexpected input %+v", input)
			}
			return []*domain.LoanAccount{{ID: "loan-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/loans?limit=5&offset=1", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
