// Package inventory implements item CRUD on top of the item repository.
// Every operation takes the acting user from the request context; the
// user ID is never accepted from input.
package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/adapter/postgres/item"
	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

// ItemRepo is the persistence surface the service needs.
type ItemRepo interface {
	Create(ctx context.Context, p item.CreateParams) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, userID uuid.UUID, f item.Filter) ([]domain.InventoryItem, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, p item.UpdateParams) (*domain.InventoryItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// Service provides inventory item operations.
type Service struct {
	items ItemRepo
	log   *slog.Logger
}

// New creates the inventory service.
func New(items ItemRepo, log *slog.Logger) *Service {
	return &Service{items: items, log: log}
}

// Create validates the input and stores a new item owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, input.ToCreateParams(userID))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", created.ID.String()),
	)

	return created, nil
}

// Get returns one item owned by the caller.
func (s *Service) Get(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.items.GetByID(ctx, userID, itemID)
}

// List returns the caller's items matching the filter.
func (s *Service) List(ctx context.Context, input ListItemsInput) ([]domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.items.List(ctx, userID, input.toFilter())
}

// Update applies a partial update to one of the caller's items.
func (s *Service) Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, userID, itemID, input.toUpdateParams())
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)

	return updated, nil
}

// Delete removes one of the caller's items.
func (s *Service) Delete(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.items.Delete(ctx, userID, itemID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}
