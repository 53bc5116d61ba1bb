package item

// Filter defines parameters for searching and paginating a user's inventory.
type Filter struct {
	// Search performs ILIKE '%...%' over name, category and description.
	// nil or empty string means no text filter.
	Search *string

	// Category filters by exact category value.
	Category *string

	// SortBy determines the sort column: "created_at", "name", "estimated_value".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC" (newest first, matching
	// the inventory page).
	SortOrder string

	// Limit is the maximum number of items to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of items to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByCreatedAt = "created_at"
	sortByName      = "name"
	sortByValue     = "estimated_value"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByCreatedAt, sortByName, sortByValue:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
