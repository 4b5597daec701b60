package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Inference Tests
// ==========================

func TestInferCategory_KeywordMatching(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"cafe keyword", "Cafe in Bondi", CategoryCafe},
		{"coffee keyword", "specialty coffee roaster", CategoryCafe},
		{"restaurant keyword", "family restaurant", CategoryRestaurant},
		{"food truck keyword", "gourmet food truck", CategoryRestaurant},
		{"retail keyword", "homewares boutique", CategoryRetail},
		{"beauty keyword", "hair salon", CategoryBeauty},
		{"fitness keyword", "24 hour gym", CategoryFitness},
		{"healthcare keyword", "dental practice", CategoryHealthcare},
		{"automotive keyword", "mobile mechanic", CategoryAutomotive},
		{"trades keyword", "plumbing contractor", CategoryTrades},
		{"online keyword", "dropshipping business", CategoryOnline},
		{"services keyword", "accountant practice", CategoryServices},
		{"no match falls back to generic", "alpaca farm", CategoryGeneric},
		{"empty input falls back to generic", "", CategoryGeneric},
		{"case insensitive", "ESPRESSO BAR", CategoryCafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferCategory(tt.input))
		})
	}
}

// TestInferCategory_TieBreakOrdering exercises deliberately ambiguous
// descriptions spanning adjacent rules. The first listed rule always wins;
// there is no semantically "correct" answer for these inputs.
func TestInferCategory_TieBreakOrdering(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"cafe before restaurant", "espresso bistro", CategoryCafe},
		{"restaurant before retail", "pizza shop", CategoryRestaurant},
		{"retail before beauty", "boutique salon", CategoryRetail},
		{"beauty before fitness", "gym and day spa", CategoryBeauty},
		{"fitness before healthcare", "yoga and physio studio", CategoryFitness},
		{"healthcare before automotive", "mobile auto clinic", CategoryHealthcare},
		{"automotive before trades", "mechanic and electrical workshop", CategoryAutomotive},
		{"trades before online", "online plumbing courses", CategoryTrades},
		{"online before services", "online marketing agency", CategoryOnline},
		{"retail wins three-way ambiguity", "online beauty store", CategoryRetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferCategory(tt.input))
		})
	}
}

func TestInferCategory_TotalAndDeterministic(t *testing.T) {
	inputs := []string{
		"", "???", "Cafe in Bondi", "online beauty store",
		"something entirely unrelated", "GYM", "法律事務所",
	}

	valid := make(map[Category]bool, len(thumbnails))
	for c := range thumbnails {
		valid[c] = true
	}

	for _, input := range inputs {
		first := InferCategory(input)
		assert.True(t, valid[first], "category %q for input %q not in fixed set", first, input)

		for i := 0; i < 5; i++ {
			assert.Equal(t, first, InferCategory(input), "inference not deterministic for %q", input)
		}
	}
}

// ==========================
// Selection Precedence Tests
// ==========================

func TestSelectCategory_Precedence(t *testing.T) {
	tests := []struct {
		name          string
		imageCategory interface{}
		businessType  string
		expected      Category
	}{
		{"valid model category wins over inference", "fitness", "Cafe in Bondi", CategoryFitness},
		{"model category is trimmed and lower-cased", "  Fitness  ", "Cafe in Bondi", CategoryFitness},
		{"invalid model category falls back", "fancyshop", "Cafe in Bondi", CategoryCafe},
		{"absent model category falls back", nil, "hair salon", CategoryBeauty},
		{"non-string model category falls back", 42.0, "hair salon", CategoryBeauty},
		{"both unusable resolves to generic", "", "mystery venture", CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectCategory(tt.imageCategory, tt.businessType))
		})
	}
}

func TestThumbnailURL_TotalMapping(t *testing.T) {
	seen := map[string]bool{}
	for c := range thumbnails {
		url := ThumbnailURL("https://assets.bizval.app/thumbs", c)
		assert.Contains(t, url, "https://assets.bizval.app/thumbs/")
		assert.False(t, seen[url], "thumbnail for %q not unique", c)
		seen[url] = true
	}

	// Trailing slash on the base does not double up.
	assert.Equal(t,
		"https://assets.bizval.app/thumbs/cafe.jpg",
		ThumbnailURL("https://assets.bizval.app/thumbs/", CategoryCafe),
	)
}
