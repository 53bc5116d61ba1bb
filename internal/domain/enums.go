package domain

// ItemCondition represents the physical condition of an inventory item.
type ItemCondition string

const (
	ConditionExcellent ItemCondition = "excellent"
	ConditionGood      ItemCondition = "good"
	ConditionFair      ItemCondition = "fair"
	ConditionPoor      ItemCondition = "poor"
)

func (c ItemCondition) String() string { return string(c) }

func (c ItemCondition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ItemCategory is the fixed vocabulary the AI extraction schema is
// constrained to. Manual entry may also use free text, so category is
// stored as a plain string; this enum only bounds the AI path.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "electronics"
	CategoryFurniture   ItemCategory = "furniture"
	CategoryClothing    ItemCategory = "clothing"
	CategoryToys        ItemCategory = "toys"
	CategoryAppliances  ItemCategory = "appliances"
	CategoryOther       ItemCategory = "other"
)

func (c ItemCategory) String() string { return string(c) }

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryClothing,
		CategoryToys, CategoryAppliances, CategoryOther:
		return true
	}
	return false
}

// Categories returns the fixed category vocabulary in schema order.
func Categories() []ItemCategory {
	return []ItemCategory{
		CategoryElectronics, CategoryFurniture, CategoryClothing,
		CategoryToys, CategoryAppliances, CategoryOther,
	}
}
