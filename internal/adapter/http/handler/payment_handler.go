package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

// PaymentService defines the behavior needed by PaymentHandler.
type PaymentService interface {
	ApplyPayment(ctx context.Context, input usecase.ApplyPaymentInput) (*domain.PaymentRecord, error)
	GetPayment(ctx context.Context, id string) (*domain.PaymentRecord, error)
	ListPaymentsByLoan(ctx context.Context, input usecase.ListPaymentsByLoanInput) ([]*domain.PaymentRecord, error)
}

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	paymentUC PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Apply applies a payment to a loan's installment schedule.
//
// A payment against a loan with no pending debt returns 200 with
// applied=false rather than an error.
func (h *PaymentHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.LoanAccountID == "" && req.LoanReference == "" {
		writeError(w, http.StatusBadRequest, "missing loan identifier", "either loan_account_id or loan_reference is required")
		return
	}

	record, err := h.paymentUC.ApplyPayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to apply payment", err.Error())

		return
	}

	if record == nil {
		writeJSON(w, http.StatusOK, dto.PaymentOutcomeFromDomain(nil))
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentOutcomeFromDomain(record))
}

// Get retrieves a payment record by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", "")
		return
	}

	record, err := h.paymentUC.GetPayment(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get payment", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(record))
}

// ListByLoan lists payments applied to a loan.
func (h *PaymentHandler) ListByLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	payments, err := h.paymentUC.ListPaymentsByLoan(r.Context(), usecase.ListPaymentsByLoanInput{
		LoanAccountID: loanID,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPaymentsResponse{
		Payments: dto.PaymentsFromDomain(payments),
		Total:    int64(len(payments)),
	})
}
