package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/loanledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/loanledger/internal/adapter/http/middleware"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"loan_account_id":"loan-1","amount":"50.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/loans/",
		"GET /api/v1/loans/",
		"GET /api/v1/loans/{id}",
		"GET /api/v1/loans/{id}/ledger",
		"GET /api/v1/loans/{id}/payments",
		"GET /api/v1/loans/{id}/consistency",
		"POST /api/v1/payments/",
		"POST /api/v1/payments/bulk",
		"GET /api/v1/payments/{id}",
		"GET /api/v1/ledger/consistency",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		LoanHandler:           handler.NewLoanHandler(&stubLoanService{}),
		PaymentHandler:        handler.NewPaymentHandler(&stubPaymentService{}),
		BulkHandler:           handler.NewBulkHandler(&stubBulkService{}),
		ReconciliationHandler: handler.NewReconciliationHandler(&stubReconciliationService{}),
		HealthHandler:         &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubLoanService struct{}

func (stubLoanService) OriginateLoan(ctx context.Context, input usecase.OriginateLoanInput) (*domain.LoanAccount, error) {
	return &domain.LoanAccount{ID: "loan"}, nil
}

func (stubLoanService) GetLoan(ctx context.Context, id string) (*domain.LoanAccount, error) {
	return &domain.LoanAccount{ID: id}, nil
}

func (stubLoanService) GetLedger(ctx context.Context, id string) (*domain.LoanAccount, []*domain.Installment, error) {
	return &domain.LoanAccount{ID: id}, []*domain.Installment{}, nil
}

func (stubLoanService) ListLoans(ctx context.Context, input usecase.ListLoansInput) ([]*domain.LoanAccount, error) {
	return []*domain.LoanAccount{}, nil
}

type stubPaymentService struct{}

func (stubPaymentService) ApplyPayment(ctx context.Context, input usecase.ApplyPaymentInput) (*domain.PaymentRecord, error) {
	return &domain.PaymentRecord{ID: "payment"}, nil
}

func (stubPaymentService) GetPayment(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	return &domain.PaymentRecord{ID: id}, nil
}

func (stubPaymentService) ListPaymentsByLoan(ctx context.Context, input usecase.ListPaymentsByLoanInput) ([]*domain.PaymentRecord, error) {
	return []*domain.PaymentRecord{}, nil
}

type stubBulkService struct{}

func (stubBulkService) ProcessBatch(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error) {
	return &usecase.BatchReport{BatchID: "batch"}, nil
}

type stubReconciliationService struct{}

func (stubReconciliationService) ReconcileLoan(ctx context.Context, loanID string) (*usecase.ReconciliationResult, error) {
	return &usecase.ReconciliationResult{LoanAccountID: loanID}, nil
}

func (stubReconciliationService) GenerateReconciliationReport(ctx context.Context) (*usecase.ReconciliationReport, error) {
	return &usecase.ReconciliationReport{Consistent: true}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
