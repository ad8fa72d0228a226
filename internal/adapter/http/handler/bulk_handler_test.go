package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/usecase"
)

type bulkServiceStub struct {
	processFn func(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error)
}

func (s *bulkServiceStub) ProcessBatch(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error) {
	return s.processFn(ctx, rows)
}

func TestBulkHandler_Process_Success(t *testing.T) {
	var captured []usecase.BulkRow

	handler := NewBulkHandler(&bulkServiceStub{
		processFn: func(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error) {
			captured = rows
			return &usecase.BatchReport{
				BatchID: "batch-1",
				Outcomes: []usecase.RowOutcome{
					{Line: 2, Status: usecase.RowApplied, LoanReference: "LN-001", PaymentID: "pay-1"},
				},
				Counts: map[usecase.RowOutcomeStatus]int{usecase.RowApplied: 1},
			}, nil
		},
	})

	body, _ := json.Marshal(dto.BulkPaymentRequest{
		Rows: []dto.BulkRowItem{
			{Identifier: "identifier", Amount: "amount"},
			{Identifier: "123456789", Amount: "50,00"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/payments/bulk", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if len(captured) != 2 || captured[1].RawAmount != "50,00" {
		t.Fatalf("expected rows to pass through raw, got %+v", captured)
	}

	var resp dto.BatchReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.BatchID != "batch-1" || resp.Counts["applied"] != 1 {
		t.Fatalf("expected batch report to propagate, got %+v", resp)
	}
}

func TestBulkHandler_Process_EmptyBatch(t *testing.T) {
	handler := NewBulkHandler(&bulkServiceStub{
		processFn: func(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error) {
			t.Fatal("ProcessBatch should not be called")
			return nil, nil
		},
	})

	body, _ := json.Marshal(dto.BulkPaymentRequest{})
	req := httptest.NewRequest(http.MethodPost, "/payments/bulk", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBulkHandler_Process_RowCapExceeded(t *testing.T) {
	handler := NewBulkHandler(&bulkServiceStub{
		processFn: func(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error) {
			return nil, errors.New("batch of 3 rows exceeds limit of 2")
		},
	})

	body, _ := json.Marshal(dto.BulkPaymentRequest{
		Rows: []dto.BulkRowItem{{}, {}, {}},
	})
	req := httptest.NewRequest(http.MethodPost, "/payments/bulk", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
