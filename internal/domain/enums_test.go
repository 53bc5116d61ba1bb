package domain

import "testing"

func TestItemConditionIsValid(t *testing.T) {
	valid := []ItemCondition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("%s should be valid", c)
		}
	}

	invalid := []ItemCondition{"", "mint", "EXCELLENT", "broken"}
	for _, c := range invalid {
		if c.IsValid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestItemCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.IsValid() {
			t.Errorf("%s should be valid", c)
		}
	}

	invalid := []ItemCategory{"", "Electronics", "vehicles"}
	for _, c := range invalid {
		if c.IsValid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestCategoriesMatchesSchemaOrder(t *testing.T) {
	got := Categories()
	want := []ItemCategory{
		CategoryElectronics, CategoryFurniture, CategoryClothing,
		CategoryToys, CategoryAppliances, CategoryOther,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
