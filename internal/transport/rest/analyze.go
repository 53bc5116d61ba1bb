package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/internal/service/analysis"
)

// analysisService defines the minimal interface needed by AnalyzeHandler.
type analysisService interface {
	Analyze(ctx context.Context, input analysis.AnalyzeInput) ([]domain.InventoryItem, error)
}

// AnalyzeHandler serves the photo analysis endpoint.
type AnalyzeHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

// Analyze handles POST /v1/analyze-items.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, err := h.svc.Analyze(r.Context(), analysis.AnalyzeInput{ImageURLs: req.ImageURLs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success: true,
		Items:   toItemResponses(items),
	})
}
