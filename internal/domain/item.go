package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits for inventory items. The same caps apply to manual entry
// and to AI-extracted attributes; extraction output is untrusted input.
const (
	MaxNameLen        = 200
	MaxDescriptionLen = 1000
	MaxCategoryLen    = 100
	MaxRoomLen        = 200
	MaxBrandLen       = 100
	MaxModelLen       = 100
	MaxColorLen       = 100
	MaxSerialLen      = 100
	MaxImageURLLen    = 2048

	// MaxItemValue caps estimated_value and purchase_price.
	MaxItemValue = 1_000_000
)

// InventoryItem is one documented household item.
// UserID is set at creation from the authenticated caller and never changes;
// it scopes every read and write.
type InventoryItem struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    *string
	Category       *string
	EstimatedValue *float64
	Condition      *ItemCondition
	RoomLocation   *string

	// Populated only via the AI analysis path.
	Brand    *string
	Model    *string
	Color    *string
	ImageURL *string

	SerialNumber  *string
	PurchasePrice *float64
	PurchaseDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
