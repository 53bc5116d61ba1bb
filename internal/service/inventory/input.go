package inventory

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/adapter/postgres/item"
	"github.com/smartonix/inventory-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// CreateItemInput
// ---------------------------------------------------------------------------

// CreateItemInput holds the parameters for documenting a new item. The same
// input type covers manual entry and AI-extracted attributes.
type CreateItemInput struct {
	Name           string
	Description    *string
	Category       *string
	EstimatedValue *float64
	Condition      *string
	RoomLocation   *string
	Brand          *string
	Model          *string
	Color          *string
	ImageURL       *string
	SerialNumber   *string
	PurchasePrice  *float64
	PurchaseDate   *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	trimmed := strings.TrimSpace(i.Name)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > domain.MaxNameLen {
		errs = append(errs, domain.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("too long (max %d)", domain.MaxNameLen),
		})
	}

	errs = append(errs, validateOptionalText("description", i.Description, domain.MaxDescriptionLen)...)
	errs = append(errs, validateOptionalText("category", i.Category, domain.MaxCategoryLen)...)
	errs = append(errs, validateOptionalText("room_location", i.RoomLocation, domain.MaxRoomLen)...)
	errs = append(errs, validateOptionalText("brand", i.Brand, domain.MaxBrandLen)...)
	errs = append(errs, validateOptionalText("model", i.Model, domain.MaxModelLen)...)
	errs = append(errs, validateOptionalText("color", i.Color, domain.MaxColorLen)...)
	errs = append(errs, validateOptionalText("serial_number", i.SerialNumber, domain.MaxSerialLen)...)

	errs = append(errs, validateValue("estimated_value", i.EstimatedValue)...)
	errs = append(errs, validateValue("purchase_price", i.PurchasePrice)...)

	if i.Condition != nil && !domain.ItemCondition(*i.Condition).IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "condition",
			Message: "must be one of: excellent, good, fair, poor",
		})
	}

	if i.ImageURL != nil {
		if !isValidHTTPURL(*i.ImageURL) {
			errs = append(errs, domain.FieldError{Field: "image_url", Message: "must be a valid HTTP(S) URL"})
		}
		if len(*i.ImageURL) > domain.MaxImageURLLen {
			errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToCreateParams maps the input onto repository insert parameters for the
// given owner.
func (i CreateItemInput) ToCreateParams(userID uuid.UUID) item.CreateParams {
	var condition *domain.ItemCondition
	if i.Condition != nil {
		c := domain.ItemCondition(*i.Condition)
		condition = &c
	}

	return item.CreateParams{
		UserID:         userID,
		Name:           strings.TrimSpace(i.Name),
		Description:    trimPtr(i.Description),
		Category:       trimPtr(i.Category),
		EstimatedValue: i.EstimatedValue,
		Condition:      condition,
		RoomLocation:   trimPtr(i.RoomLocation),
		Brand:          trimPtr(i.Brand),
		Model:          trimPtr(i.Model),
		Color:          trimPtr(i.Color),
		ImageURL:       i.ImageURL,
		SerialNumber:   trimPtr(i.SerialNumber),
		PurchasePrice:  i.PurchasePrice,
		PurchaseDate:   i.PurchaseDate,
	}
}

// ---------------------------------------------------------------------------
// UpdateItemInput
// ---------------------------------------------------------------------------

// UpdateItemInput holds the parameters for a partial item update.
// nil fields are left untouched.
type UpdateItemInput struct {
	Name           *string
	Description    *string
	Category       *string
	EstimatedValue *float64
	Condition      *string
	RoomLocation   *string
	SerialNumber   *string
	PurchasePrice  *float64
	PurchaseDate   *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if strings.TrimSpace(*i.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(*i.Name) > domain.MaxNameLen {
			errs = append(errs, domain.FieldError{
				Field:   "name",
				Message: fmt.Sprintf("too long (max %d)", domain.MaxNameLen),
			})
		}
	}

	errs = append(errs, validateOptionalText("description", i.Description, domain.MaxDescriptionLen)...)
	errs = append(errs, validateOptionalText("category", i.Category, domain.MaxCategoryLen)...)
	errs = append(errs, validateOptionalText("room_location", i.RoomLocation, domain.MaxRoomLen)...)
	errs = append(errs, validateOptionalText("serial_number", i.SerialNumber, domain.MaxSerialLen)...)

	errs = append(errs, validateValue("estimated_value", i.EstimatedValue)...)
	errs = append(errs, validateValue("purchase_price", i.PurchasePrice)...)

	if i.Condition != nil && !domain.ItemCondition(*i.Condition).IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "condition",
			Message: "must be one of: excellent, good, fair, poor",
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateItemInput) toUpdateParams() item.UpdateParams {
	var condition *domain.ItemCondition
	if i.Condition != nil {
		c := domain.ItemCondition(*i.Condition)
		condition = &c
	}

	return item.UpdateParams{
		Name:           trimPtr(i.Name),
		Description:    trimPtr(i.Description),
		Category:       trimPtr(i.Category),
		EstimatedValue: i.EstimatedValue,
		Condition:      condition,
		RoomLocation:   trimPtr(i.RoomLocation),
		SerialNumber:   trimPtr(i.SerialNumber),
		PurchasePrice:  i.PurchasePrice,
		PurchaseDate:   i.PurchaseDate,
	}
}

// ---------------------------------------------------------------------------
// ListItemsInput
// ---------------------------------------------------------------------------

// ListItemsInput holds the list filter as received from the query string.
type ListItemsInput struct {
	Search    *string
	Category  *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

var sortFields = map[string]bool{
	"":                true,
	"created_at":      true,
	"name":            true,
	"estimated_value": true,
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError

	if !sortFields[i.SortBy] {
		errs = append(errs, domain.FieldError{
			Field:   "sort_by",
			Message: "must be one of: created_at, name, estimated_value",
		})
	}

	switch strings.ToUpper(i.SortOrder) {
	case "", "ASC", "DESC":
	default:
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be ASC or DESC"})
	}

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListItemsInput) toFilter() item.Filter {
	return item.Filter{
		Search:    i.Search,
		Category:  i.Category,
		SortBy:    i.SortBy,
		SortOrder: strings.ToUpper(i.SortOrder),
		Limit:     i.Limit,
		Offset:    i.Offset,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateOptionalText(field string, val *string, maxLen int) []domain.FieldError {
	if val == nil || len(*val) <= maxLen {
		return nil
	}
	return []domain.FieldError{{
		Field:   field,
		Message: fmt.Sprintf("too long (max %d)", maxLen),
	}}
}

func validateValue(field string, val *float64) []domain.FieldError {
	if val == nil {
		return nil
	}
	if *val < 0 {
		return []domain.FieldError{{Field: field, Message: "must be >= 0"}}
	}
	if *val > domain.MaxItemValue {
		return []domain.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d", domain.MaxItemValue),
		}}
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// isValidHTTPURL checks if the URL is a valid HTTP or HTTPS URL.
func isValidHTTPURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
