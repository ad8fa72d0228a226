package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/usecase"
)

// BulkService defines the behavior needed by BulkHandler.
type BulkService interface {
	ProcessBatch(ctx context.Context, rows []usecase.BulkRow) (*usecase.BatchReport, error)
}

// BulkHandler handles bulk payment ingestion.
type BulkHandler struct {
	bulkUC BulkService
}

// NewBulkHandler creates a new BulkHandler.
func NewBulkHandler(bulkUC BulkService) *BulkHandler {
	return &BulkHandler{bulkUC: bulkUC}
}

// Process ingests a batch of raw payment rows. The batch itself always
// succeeds once accepted; individual row failures are reported per row.
func (h *BulkHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "empty batch", "at least a header row is required")
		return
	}

	report, err := h.bulkUC.ProcessBatch(r.Context(), req.ToUseCaseRows())
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to process batch", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BatchReportFromUseCase(report))
}
