// Package item implements the inventory item repository using PostgreSQL.
// Every query is scoped by user_id; there is no cross-user visibility.
// Static queries use raw SQL; the filtered list and partial update are
// built with squirrel.
package item

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartonix/inventory-backend/internal/adapter/postgres"
	"github.com/smartonix/inventory-backend/internal/domain"
)

// Repo provides inventory item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itemColumns = `id, user_id, name, description, category, estimated_value,
	condition, room_location, brand, model, color, image_url,
	serial_number, purchase_price, purchase_date, created_at, updated_at`

const insertSQL = `
INSERT INTO inventory_items (
	user_id, name, description, category, estimated_value, condition,
	room_location, brand, model, color, image_url,
	serial_number, purchase_price, purchase_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM inventory_items
WHERE user_id = $1 AND id = $2`

const deleteSQL = `
DELETE FROM inventory_items
WHERE user_id = $1 AND id = $2`

const summarySQL = `
SELECT
	COUNT(*),
	COALESCE(SUM(estimated_value), 0),
	COUNT(DISTINCT category) FILTER (WHERE category IS NOT NULL)
FROM inventory_items
WHERE user_id = $1`

// CreateParams holds the columns set on insert. UserID is required;
// everything else mirrors the nullable table columns.
type CreateParams struct {
	UserID         uuid.UUID
	Name           string
	Description    *string
	Category       *string
	EstimatedValue *float64
	Condition      *domain.ItemCondition
	RoomLocation   *string
	Brand          *string
	Model          *string
	Color          *string
	ImageURL       *string
	SerialNumber   *string
	PurchasePrice  *float64
	PurchaseDate   *time.Time
}

// UpdateParams holds the columns changed on partial update.
// nil fields are left untouched.
type UpdateParams struct {
	Name           *string
	Description    *string
	Category       *string
	EstimatedValue *float64
	Condition      *domain.ItemCondition
	RoomLocation   *string
	SerialNumber   *string
	PurchasePrice  *float64
	PurchaseDate   *time.Time
}

// Create inserts one inventory item and returns the stored row.
func (r *Repo) Create(ctx context.Context, p CreateParams) (*domain.InventoryItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var condition *string
	if p.Condition != nil {
		s := p.Condition.String()
		condition = &s
	}

	row := querier.QueryRow(ctx, insertSQL,
		p.UserID, p.Name, p.Description, p.Category, p.EstimatedValue, condition,
		p.RoomLocation, p.Brand, p.Model, p.Color, p.ImageURL,
		p.SerialNumber, p.PurchasePrice, p.PurchaseDate,
	)

	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", p.UserID)
	}

	return item, nil
}

// GetByID returns one item owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InventoryItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(querier.QueryRow(ctx, getByIDSQL, userID, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// List returns the user's items matching the filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f Filter) ([]domain.InventoryItem, error) {
	f.normalize()

	builder := psql.Select(itemColumns).
		From("inventory_items").
		Where(sq.Eq{"user_id": userID})

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"category": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if f.Category != nil && *f.Category != "" {
		builder = builder.Where(sq.Eq{"category": *f.Category})
	}

	builder = builder.
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.SortOrder), "id "+f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item", userID)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "item", userID)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "item", userID)
	}

	return items, nil
}

// Update applies a partial update to an item owned by the given user and
// returns the updated row. Returns domain.ErrNotFound when the item does not
// exist or belongs to someone else.
func (r *Repo) Update(ctx context.Context, userID, itemID uuid.UUID, p UpdateParams) (*domain.InventoryItem, error) {
	builder := psql.Update("inventory_items").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "id": itemID}).
		Suffix("RETURNING " + itemColumns)

	if p.Name != nil {
		builder = builder.Set("name", *p.Name)
	}
	if p.Description != nil {
		builder = builder.Set("description", *p.Description)
	}
	if p.Category != nil {
		builder = builder.Set("category", *p.Category)
	}
	if p.EstimatedValue != nil {
		builder = builder.Set("estimated_value", *p.EstimatedValue)
	}
	if p.Condition != nil {
		builder = builder.Set("condition", p.Condition.String())
	}
	if p.RoomLocation != nil {
		builder = builder.Set("room_location", *p.RoomLocation)
	}
	if p.SerialNumber != nil {
		builder = builder.Set("serial_number", *p.SerialNumber)
	}
	if p.PurchasePrice != nil {
		builder = builder.Set("purchase_price", *p.PurchasePrice)
	}
	if p.PurchaseDate != nil {
		builder = builder.Set("purchase_date", *p.PurchaseDate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// Delete removes an item owned by the given user.
// Returns domain.ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, userID, itemID)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "item", itemID)
	}

	return nil
}

// Summary aggregates the user's inventory for reports: item count, total
// estimated value, and the number of distinct categories.
func (r *Repo) Summary(ctx context.Context, userID uuid.UUID) (count int, totalValue float64, categories int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err = querier.QueryRow(ctx, summarySQL, userID).Scan(&count, &totalValue, &categories)
	if err != nil {
		return 0, 0, 0, postgres.MapError(err, "item", userID)
	}

	return count, totalValue, categories, nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var (
		item      domain.InventoryItem
		condition *string
	)

	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Description, &item.Category,
		&item.EstimatedValue, &condition, &item.RoomLocation,
		&item.Brand, &item.Model, &item.Color, &item.ImageURL,
		&item.SerialNumber, &item.PurchasePrice, &item.PurchaseDate,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if condition != nil {
		c := domain.ItemCondition(*condition)
		item.Condition = &c
	}

	return &item, nil
}
