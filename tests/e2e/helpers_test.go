//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/smartonix/inventory-backend/internal/adapter/extractor"
	"github.com/smartonix/inventory-backend/internal/adapter/postgres"
	itempg "github.com/smartonix/inventory-backend/internal/adapter/postgres/item"
	profilepg "github.com/smartonix/inventory-backend/internal/adapter/postgres/profile"
	"github.com/smartonix/inventory-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/smartonix/inventory-backend/internal/auth"
	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/service/analysis"
	"github.com/smartonix/inventory-backend/internal/service/inventory"
	profilesvc "github.com/smartonix/inventory-backend/internal/service/profile"
	"github.com/smartonix/inventory-backend/internal/service/report"
	"github.com/smartonix/inventory-backend/internal/transport/rest"
)

const (
	testJWTSecret = "0123456789abcdef0123456789abcdef"
	testJWTIssuer = "smartonix"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Gateway *fakeGateway
}

// fakeGateway is an httptest stand-in for the AI gateway. Responses are
// scripted per call; an entry with fail=true returns HTTP 500.
type fakeGateway struct {
	srv     *httptest.Server
	replies []gatewayReply
	calls   int
}

type gatewayReply struct {
	arguments string
	fail      bool
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()

	g := &fakeGateway{}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idx := g.calls
		g.calls++

		if idx >= len(g.replies) || g.replies[idx].fail {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"error": {"message": "model overloaded"}}`)
			return
		}

		args, _ := json.Marshal(g.replies[idx].arguments)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices": [{"message": {"tool_calls": [{"function": {"name": "extract_item_details", "arguments": `+string(args)+`}}]}}]}`)
	}))
	t.Cleanup(g.srv.Close)

	return g
}

// reply queues a successful extraction for the next gateway call.
func (g *fakeGateway) reply(name string, value float64) {
	args, _ := json.Marshal(map[string]any{
		"name":            name,
		"description":     "extracted by test gateway",
		"category":        "electronics",
		"estimated_value": value,
		"condition":       "good",
	})
	g.replies = append(g.replies, gatewayReply{arguments: string(args)})
}

// replyFail queues a gateway failure for the next call.
func (g *fakeGateway) replyFail() {
	g.replies = append(g.replies, gatewayReply{fail: true})
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	gateway := newFakeGateway(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := postgres.NewTxManager(pool)
	itemRepo := itempg.New(pool)
	profileRepo := profilepg.New(pool)

	extractorClient := extractor.New(config.ExtractorConfig{
		BaseURL: gateway.srv.URL,
		APIKey:  "test-key",
		Model:   "google/gemini-2.5-flash",
		Timeout: 10 * time.Second,
	})

	analysisCfg := config.AnalysisConfig{MaxBatchSize: 10, RequestsPerMinute: 1000}

	deps := rest.Deps{
		Inventory: inventory.New(itemRepo, logger),
		Analysis:  analysis.New(extractorClient, itemRepo, txManager, analysisCfg, logger),
		Profile:   profilesvc.New(profileRepo, logger),
		Report:    report.New(itemRepo),
		Verifier:  authpkg.NewTokenVerifier(testJWTSecret, testJWTIssuer),
		DB:        pool,
		Version:   "e2e-test",
		Logger:    logger,
	}

	cfg := &config.Config{
		Analysis: analysisCfg,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}

	srv := httptest.NewServer(rest.NewRouter(deps, cfg))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Gateway: gateway,
	}
}

// token issues a bearer token for the given user.
func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := authpkg.SignToken(testJWTSecret, testJWTIssuer, userID, time.Hour)
	require.NoError(t, err)
	return token
}

// request performs an HTTP call and decodes the JSON response body.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}

	return resp.StatusCode, result
}

// countItems returns the number of inventory rows owned by the user.
func (ts *testServer) countItems(t *testing.T, userID uuid.UUID) int {
	t.Helper()

	var count int
	err := ts.Pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM inventory_items WHERE user_id = $1", userID).Scan(&count)
	require.NoError(t, err)
	return count
}
