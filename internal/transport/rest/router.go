package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/transport/middleware"
)

// tokenVerifier validates bearer tokens for the auth middleware.
type tokenVerifier interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	Inventory inventoryService
	Analysis  analysisService
	Profile   profileService
	Report    reportService
	Verifier  tokenVerifier
	DB        dbPinger
	Version   string
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler tree. All /v1 routes require a valid
// bearer token; health probes and CORS preflight do not. The analysis
// endpoint additionally gets a per-IP rate limit because every request
// fans out to the AI gateway.
func NewRouter(deps Deps, cfg *config.Config) http.Handler {
	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Logger)
	analyzeHandler := NewAnalyzeHandler(deps.Analysis, deps.Logger)
	profileHandler := NewProfileHandler(deps.Profile, deps.Logger)
	reportHandler := NewReportHandler(deps.Report, deps.Logger)
	healthHandler := NewHealthHandler(deps.DB, deps.Version)

	rateLimiter := middleware.NewRateLimiter(time.Minute)

	authed := middleware.RequireAuth(deps.Verifier)
	limited := middleware.Chain(authed, rateLimiter.Limit(cfg.Analysis.RequestsPerMinute))

	mux := http.NewServeMux()

	mux.Handle("POST /v1/analyze-items", limited(http.HandlerFunc(analyzeHandler.Analyze)))

	mux.Handle("POST /v1/items", authed(http.HandlerFunc(inventoryHandler.Create)))
	mux.Handle("GET /v1/items", authed(http.HandlerFunc(inventoryHandler.List)))
	mux.Handle("GET /v1/items/{id}", authed(http.HandlerFunc(inventoryHandler.Get)))
	mux.Handle("PATCH /v1/items/{id}", authed(http.HandlerFunc(inventoryHandler.Update)))
	mux.Handle("DELETE /v1/items/{id}", authed(http.HandlerFunc(inventoryHandler.Delete)))

	mux.Handle("GET /v1/profile", authed(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /v1/profile", authed(http.HandlerFunc(profileHandler.Update)))

	mux.Handle("GET /v1/reports/summary", authed(http.HandlerFunc(reportHandler.Summary)))

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
