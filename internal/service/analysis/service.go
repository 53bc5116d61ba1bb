// Package analysis orchestrates photo analysis: each uploaded image URL is
// sent to the AI gateway, the extracted attributes are validated like any
// other input, and the resulting items are persisted in one transaction.
// If any image fails, nothing is saved.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smartonix/inventory-backend/internal/adapter/extractor"
	"github.com/smartonix/inventory-backend/internal/adapter/postgres/item"
	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/internal/service/inventory"
	"github.com/smartonix/inventory-backend/pkg/ctxutil"
)

// Gateway extracts item attributes from one photo.
type Gateway interface {
	ExtractFromImage(ctx context.Context, imageURL string) (*extractor.ItemDetails, error)
}

// ItemRepo is the persistence surface the service needs.
type ItemRepo interface {
	Create(ctx context.Context, p item.CreateParams) (*domain.InventoryItem, error)
}

// TxRunner runs a function within a database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the analysis pipeline.
type Service struct {
	gateway Gateway
	items   ItemRepo
	tx      TxRunner
	cfg     config.AnalysisConfig
	log     *slog.Logger
}

// New creates the analysis service.
func New(gateway Gateway, items ItemRepo, tx TxRunner, cfg config.AnalysisConfig, log *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		items:   items,
		tx:      tx,
		cfg:     cfg,
		log:     log,
	}
}

// Analyze processes the batch of image URLs sequentially and returns the
// created items in input order. The whole batch commits or none of it does.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) ([]domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxBatchSize); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "analysis started",
		slog.String("user_id", userID.String()),
		slog.Int("images", len(input.ImageURLs)),
	)

	var created []domain.InventoryItem

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for idx, imageURL := range input.ImageURLs {
			details, err := s.gateway.ExtractFromImage(txCtx, imageURL)
			if err != nil {
				return fmt.Errorf("image %d of %d: %w", idx+1, len(input.ImageURLs), err)
			}

			createInput := toCreateInput(details, imageURL)
			if err := createInput.Validate(); err != nil {
				return fmt.Errorf("image %d of %d: extracted attributes rejected: %w",
					idx+1, len(input.ImageURLs), err)
			}

			saved, err := s.items.Create(txCtx, createInput.ToCreateParams(userID))
			if err != nil {
				return fmt.Errorf("image %d of %d: save item: %w", idx+1, len(input.ImageURLs), err)
			}

			created = append(created, *saved)
		}
		return nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "analysis failed, batch rolled back",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "analysis complete",
		slog.String("user_id", userID.String()),
		slog.Int("items_created", len(created)),
	)

	return created, nil
}

// toCreateInput maps gateway output onto the same input type manual entry
// uses, so both paths share one validation gate.
func toCreateInput(d *extractor.ItemDetails, imageURL string) inventory.CreateItemInput {
	value := d.EstimatedValue
	condition := d.Condition

	// The schema constrains the model to a fixed vocabulary, but the reply
	// is still untrusted; anything outside it becomes "other".
	category := d.Category
	if !domain.ItemCategory(category).IsValid() {
		category = domain.CategoryOther.String()
	}

	return inventory.CreateItemInput{
		Name:           d.Name,
		Description:    &d.Description,
		Category:       &category,
		EstimatedValue: &value,
		Condition:      &condition,
		Brand:          d.Brand,
		Model:          d.Model,
		Color:          d.Color,
		ImageURL:       &imageURL,
	}
}
