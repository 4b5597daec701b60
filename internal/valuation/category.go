package valuation

import "strings"

// Category is one of the fixed business-type buckets used to select the
// listing thumbnail.
type Category string

const (
	CategoryCafe       Category = "cafe"
	CategoryRestaurant Category = "restaurant"
	CategoryRetail     Category = "retail"
	CategoryServices   Category = "services"
	CategoryTrades     Category = "trades"
	CategoryBeauty     Category = "beauty"
	CategoryFitness    Category = "fitness"
	CategoryHealthcare Category = "healthcare"
	CategoryAutomotive Category = "automotive"
	CategoryOnline     Category = "online"
	CategoryGeneric    Category = "generic"
)

// categoryRules is ordered: the first rule whose keyword matches wins, which
// is the tie-break policy for descriptions spanning several categories.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryCafe, []string{"cafe", "coffee", "espresso"}},
	{CategoryRestaurant, []string{"restaurant", "bistro", "takeaway", "food truck", "burger", "pizza"}},
	{CategoryRetail, []string{"retail", "shop", "store", "boutique", "florist", "grocery", "supermarket"}},
	{CategoryBeauty, []string{"salon", "barber", "spa", "beauty", "nail"}},
	{CategoryFitness, []string{"gym", "fitness", "pilates", "yoga", "personal training"}},
	{CategoryHealthcare, []string{"clinic", "medical", "dental", "dentist", "physio", "chiro", "pharmacy"}},
	{CategoryAutomotive, []string{"auto", "mechanic", "panel beat", "car wash", "detailing", "tyre"}},
	{CategoryTrades, []string{"plumb", "electric", "aircon", "hvac", "construction", "builder", "trade"}},
	{CategoryOnline, []string{"online", "e-commerce", "ecommerce", "dropship", "saas", "software"}},
	{CategoryServices, []string{"office", "consult", "accountant", "law", "legal", "agency", "marketing", "design"}},
}

// thumbnails maps each category to its thumbnail image file, one-to-one.
var thumbnails = map[Category]string{
	CategoryCafe:       "cafe.jpg",
	CategoryRestaurant: "restaurant.jpg",
	CategoryRetail:     "retail.jpg",
	CategoryServices:   "services.jpg",
	CategoryTrades:     "trades.jpg",
	CategoryBeauty:     "beauty.jpg",
	CategoryFitness:    "fitness.jpg",
	CategoryHealthcare: "healthcare.jpg",
	CategoryAutomotive: "automotive.jpg",
	CategoryOnline:     "online.jpg",
	CategoryGeneric:    "generic.jpg",
}

// InferCategory maps a free-text business description to exactly one
// category. The function is total: anything without a keyword match falls
// back to generic.
func InferCategory(text string) Category {
	lowered := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneric
}

// SelectCategory applies the call-site precedence: a model-supplied
// imageCategory that exactly matches the fixed set (after trimming and
// lower-casing) wins; anything else falls back to inference over the
// business-type text.
func SelectCategory(imageCategory interface{}, businessType string) Category {
	if s, ok := imageCategory.(string); ok {
		candidate := Category(strings.ToLower(strings.TrimSpace(s)))
		if _, known := thumbnails[candidate]; known {
			return candidate
		}
	}
	return InferCategory(businessType)
}

// ThumbnailURL joins the assets base URL with the category's image file.
func ThumbnailURL(baseURL string, c Category) string {
	file, ok := thumbnails[c]
	if !ok {
		file = thumbnails[CategoryGeneric]
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + file
}
