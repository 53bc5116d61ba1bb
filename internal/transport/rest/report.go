package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/smartonix/inventory-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Summary(ctx context.Context) (*report.Summary, error)
}

// ReportHandler serves report endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Summary handles GET /v1/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		TotalItems:     summary.TotalItems,
		TotalValue:     summary.TotalValue,
		CategoriesUsed: summary.CategoriesUsed,
	})
}
