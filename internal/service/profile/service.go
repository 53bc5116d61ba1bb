// Package profile manages per-user company settings shown on reports.
package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	profilerepo "github.com/smartonix/inventory-backend/internal/adapter/postgres/profile"
	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

// ProfileRepo is the persistence surface the service needs.
type ProfileRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, p profilerepo.UpsertParams) (*domain.Profile, error)
}

// Service provides company settings operations.
type Service struct {
	profiles ProfileRepo
	log      *slog.Logger
}

// New creates the profile service.
func New(profiles ProfileRepo, log *slog.Logger) *Service {
	return &Service{profiles: profiles, log: log}
}

// Get returns the caller's settings. Users who never saved settings get an
// empty profile rather than a 404; the settings form starts blank.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Profile{ID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Update validates and saves the caller's settings, creating the profile
// row on first save.
func (s *Service) Update(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.profiles.Upsert(ctx, userID, input.toUpsertParams())
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return saved, nil
}
