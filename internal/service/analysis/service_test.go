package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/adapter/extractor"
	"github.com/smartonix/inventory-backend/internal/adapter/postgres/item"
	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

type mockGateway struct {
	extractFn func(ctx context.Context, imageURL string) (*extractor.ItemDetails, error)
}

func (m *mockGateway) ExtractFromImage(ctx context.Context, imageURL string) (*extractor.ItemDetails, error) {
	return m.extractFn(ctx, imageURL)
}

type mockItemRepo struct {
	createFn func(ctx context.Context, p item.CreateParams) (*domain.InventoryItem, error)
}

func (m *mockItemRepo) Create(ctx context.Context, p item.CreateParams) (*domain.InventoryItem, error) {
	return m.createFn(ctx, p)
}

// fakeTx mimics transactional all-or-nothing semantics: inserts recorded
// during fn are discarded when fn returns an error.
type fakeTx struct {
	committed [][]item.CreateParams
	pending   []item.CreateParams
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.pending = nil
	if err := fn(ctx); err != nil {
		f.pending = nil
		return err
	}
	f.committed = append(f.committed, f.pending)
	f.pending = nil
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.AnalysisConfig {
	return config.AnalysisConfig{MaxBatchSize: 10, RequestsPerMinute: 10}
}

func goodDetails(name string) *extractor.ItemDetails {
	return &extractor.ItemDetails{
		Name:           name,
		Description:    "desc",
		Category:       "electronics",
		EstimatedValue: 100,
		Condition:      "good",
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestService_Analyze_Success(t *testing.T) {
	userID := uuid.New()

	gateway := &mockGateway{
		extractFn: func(_ context.Context, imageURL string) (*extractor.ItemDetails, error) {
			return goodDetails("Item for " + imageURL), nil
		},
	}

	tx := &fakeTx{}
	repo := &mockItemRepo{
		createFn: func(_ context.Context, p item.CreateParams) (*domain.InventoryItem, error) {
			tx.pending = append(tx.pending, p)
			return &domain.InventoryItem{ID: uuid.New(), UserID: p.UserID, Name: p.Name, ImageURL: p.ImageURL}, nil
		},
	}

	svc := New(gateway, repo, tx, testConfig(), testLogger())

	urls := []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}
	items, err := svc.Analyze(authedCtx(userID), AnalyzeInput{ImageURLs: urls})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Results come back in input order with the source photo attached.
	for i, it := range items {
		if it.UserID != userID {
			t.Errorf("item %d owner = %s, want %s", i, it.UserID, userID)
		}
		if it.ImageURL == nil || *it.ImageURL != urls[i] {
			t.Errorf("item %d image url = %v, want %s", i, it.ImageURL, urls[i])
		}
	}
	if len(tx.committed) != 1 || len(tx.committed[0]) != 2 {
		t.Fatalf("expected one committed batch of 2, got %+v", tx.committed)
	}
}

func TestService_Analyze_MidBatchFailureSavesNothing(t *testing.T) {
	gatewayErr := fmt.Errorf("%w: gateway returned 429", domain.ErrExtraction)

	var calls int
	gateway := &mockGateway{
		extractFn: func(_ context.Context, _ string) (*extractor.ItemDetails, error) {
			calls++
			if calls == 2 {
				return nil, gatewayErr
			}
			return goodDetails("Item"), nil
		},
	}

	tx := &fakeTx{}
	repo := &mockItemRepo{
		createFn: func(_ context.Context, p item.CreateParams) (*domain.InventoryItem, error) {
			tx.pending = append(tx.pending, p)
			return &domain.InventoryItem{ID: uuid.New(), UserID: p.UserID, Name: p.Name}, nil
		},
	}

	svc := New(gateway, repo, tx, testConfig(), testLogger())

	urls := []string{
		"https://cdn.example.com/1.jpg",
		"https://cdn.example.com/2.jpg",
		"https://cdn.example.com/3.jpg",
	}
	_, err := svc.Analyze(authedCtx(uuid.New()), AnalyzeInput{ImageURLs: urls})
	if !errors.Is(err, domain.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}

	// The first image succeeded but the batch must roll back whole.
	if len(tx.committed) != 0 {
		t.Fatalf("expected no committed batches, got %+v", tx.committed)
	}
	if calls != 2 {
		t.Errorf("gateway called %d times, want 2 (stop at first failure)", calls)
	}
}

func TestService_Analyze_Unauthenticated(t *testing.T) {
	gateway := &mockGateway{
		extractFn: func(context.Context, string) (*extractor.ItemDetails, error) {
			t.Fatal("gateway must not be called")
			return nil, nil
		},
	}
	repo := &mockItemRepo{
		createFn: func(context.Context, item.CreateParams) (*domain.InventoryItem, error) {
			t.Fatal("repo must not be called")
			return nil, nil
		},
	}

	svc := New(gateway, repo, &fakeTx{}, testConfig(), testLogger())

	_, err := svc.Analyze(context.Background(), AnalyzeInput{
		ImageURLs: []string{"https://cdn.example.com/1.jpg"},
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_Analyze_InvalidBatch(t *testing.T) {
	svc := New(&mockGateway{}, &mockItemRepo{}, &fakeTx{}, testConfig(), testLogger())
	ctx := authedCtx(uuid.New())

	tests := []struct {
		name string
		urls []string
	}{
		{"empty batch", nil},
		{"not a url", []string{"ftp://example.com/a.jpg"}},
		{"too many", make11URLs()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(ctx, AnalyzeInput{ImageURLs: tt.urls})
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func make11URLs() []string {
	urls := make([]string, 11)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://cdn.example.com/%d.jpg", i)
	}
	return urls
}

func TestService_Analyze_UnknownCategoryBecomesOther(t *testing.T) {
	gateway := &mockGateway{
		extractFn: func(context.Context, string) (*extractor.ItemDetails, error) {
			d := goodDetails("Mystery box")
			d.Category = "antiques"
			return d, nil
		},
	}

	var gotCategory *string
	tx := &fakeTx{}
	repo := &mockItemRepo{
		createFn: func(_ context.Context, p item.CreateParams) (*domain.InventoryItem, error) {
			gotCategory = p.Category
			return &domain.InventoryItem{ID: uuid.New(), UserID: p.UserID, Name: p.Name}, nil
		},
	}

	svc := New(gateway, repo, tx, testConfig(), testLogger())

	_, err := svc.Analyze(authedCtx(uuid.New()), AnalyzeInput{
		ImageURLs: []string{"https://cdn.example.com/1.jpg"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCategory == nil || *gotCategory != "other" {
		t.Errorf("category = %v, want other", gotCategory)
	}
}

func TestService_Analyze_RejectsBadExtraction(t *testing.T) {
	// Gateway returned a value above the cap; extracted attributes go
	// through the same validation as manual entry.
	gateway := &mockGateway{
		extractFn: func(context.Context, string) (*extractor.ItemDetails, error) {
			d := goodDetails("Gold bar")
			d.EstimatedValue = 5_000_000
			return d, nil
		},
	}

	tx := &fakeTx{}
	repo := &mockItemRepo{
		createFn: func(context.Context, item.CreateParams) (*domain.InventoryItem, error) {
			t.Fatal("repo must not be called")
			return nil, nil
		},
	}

	svc := New(gateway, repo, tx, testConfig(), testLogger())

	_, err := svc.Analyze(authedCtx(uuid.New()), AnalyzeInput{
		ImageURLs: []string{"https://cdn.example.com/1.jpg"},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(tx.committed) != 0 {
		t.Fatalf("expected nothing committed, got %+v", tx.committed)
	}
}
