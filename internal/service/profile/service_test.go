package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	profilerepo "github.com/smartonix/inventory-backend/internal/adapter/postgres/profile"
	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

type mockProfileRepo struct {
	getByIDFn func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	upsertFn  func(ctx context.Context, userID uuid.UUID, p profilerepo.UpsertParams) (*domain.Profile, error)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, userID uuid.UUID, p profilerepo.UpsertParams) (*domain.Profile, error) {
	return m.upsertFn(ctx, userID, p)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestService_Get_MissingProfileReturnsEmpty(t *testing.T) {
	userID := uuid.New()

	repo := &mockProfileRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.Profile, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := New(repo, testLogger())

	p, err := svc.Get(ctxutil.WithUserID(context.Background(), userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != userID {
		t.Errorf("profile ID = %s, want %s", p.ID, userID)
	}
	if p.CompanyName != nil {
		t.Errorf("expected empty profile, got %+v", p)
	}
}

func TestService_Get_Unauthenticated(t *testing.T) {
	svc := New(&mockProfileRepo{}, testLogger())

	_, err := svc.Get(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_Update_TrimsAndSaves(t *testing.T) {
	userID := uuid.New()

	var gotParams profilerepo.UpsertParams
	repo := &mockProfileRepo{
		upsertFn: func(_ context.Context, _ uuid.UUID, p profilerepo.UpsertParams) (*domain.Profile, error) {
			gotParams = p
			return &domain.Profile{ID: userID, CompanyName: p.CompanyName}, nil
		},
	}

	svc := New(repo, testLogger())

	_, err := svc.Update(ctxutil.WithUserID(context.Background(), userID), UpdateProfileInput{
		CompanyName: strPtr("  Acme Restoration  "),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotParams.CompanyName == nil || *gotParams.CompanyName != "Acme Restoration" {
		t.Errorf("company name = %v, want trimmed", gotParams.CompanyName)
	}
}

func TestService_Update_TooLong(t *testing.T) {
	repo := &mockProfileRepo{
		upsertFn: func(context.Context, uuid.UUID, profilerepo.UpsertParams) (*domain.Profile, error) {
			t.Fatal("repo must not be called")
			return nil, nil
		},
	}

	svc := New(repo, testLogger())

	_, err := svc.Update(ctxutil.WithUserID(context.Background(), uuid.New()), UpdateProfileInput{
		CompanyAddress: strPtr(strings.Repeat("a", 501)),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
