// Package classifier infers a baby-supply category from free-text product
// category descriptions, e.g. the "categories" field returned by Open Food
// Facts.
package classifier

import "strings"

const (
	CategoryDiapers  = "Diapers"
	CategoryWetWipes = "Wet Wipes"
	CategoryFood     = "Food & Formula"
	CategoryBathCare = "Bath & Care"
	CategoryMedicine = "Medicine & Health"
	CategoryOther    = "Other"
)

// keyword lists are checked in order; the first category with a matching
// substring wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryDiapers, []string{"diaper", "nappy", "pampers"}},
	{CategoryWetWipes, []string{"wipe", "wet wipe", "baby wipe"}},
	{CategoryFood, []string{"formula", "milk", "baby food", "infant"}},
	{CategoryBathCare, []string{"lotion", "cream", "shampoo", "soap"}},
	{CategoryMedicine, []string{"medicine", "vitamin", "supplement", "tylenol"}},
}

// Classify maps a free-text description to one of the fixed categories.
// Matching is case-insensitive; unmatched input falls back to "Other".
func Classify(description string) string {
	lower := strings.ToLower(description)

	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}

	return CategoryOther
}

// Valid reports whether category is one of the fixed labels.
func Valid(category string) bool {
	switch category {
	case CategoryDiapers, CategoryWetWipes, CategoryFood, CategoryBathCare, CategoryMedicine, CategoryOther:
		return true
	}
	return false
}
