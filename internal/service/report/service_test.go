package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

type mockSummaryRepo struct {
	summaryFn func(ctx context.Context, userID uuid.UUID) (int, float64, int, error)
}

func (m *mockSummaryRepo) Summary(ctx context.Context, userID uuid.UUID) (int, float64, int, error) {
	return m.summaryFn(ctx, userID)
}

func TestService_Summary(t *testing.T) {
	userID := uuid.New()

	repo := &mockSummaryRepo{
		summaryFn: func(_ context.Context, got uuid.UUID) (int, float64, int, error) {
			if got != userID {
				t.Errorf("queried user %s, want %s", got, userID)
			}
			return 12, 3450.50, 4, nil
		},
	}

	svc := New(repo)

	summary, err := svc.Summary(ctxutil.WithUserID(context.Background(), userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalItems != 12 || summary.TotalValue != 3450.50 || summary.CategoriesUsed != 4 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestService_Summary_Unauthenticated(t *testing.T) {
	svc := New(&mockSummaryRepo{})

	_, err := svc.Summary(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
