// Package report aggregates the caller's inventory into summary figures.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

// SummaryRepo is the persistence surface the service needs.
type SummaryRepo interface {
	Summary(ctx context.Context, userID uuid.UUID) (count int, totalValue float64, categories int, err error)
}

// Summary describes the caller's inventory at a glance.
type Summary struct {
	TotalItems     int
	TotalValue     float64
	CategoriesUsed int
}

// Service produces inventory summaries.
type Service struct {
	items SummaryRepo
}

// New creates the report service.
func New(items SummaryRepo) *Service {
	return &Service{items: items}
}

// Summary returns the caller's inventory totals.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	count, total, categories, err := s.items.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalItems:     count,
		TotalValue:     total,
		CategoriesUsed: categories,
	}, nil
}
