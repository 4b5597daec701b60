package valuation

import (
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// maxListingBullets caps the rendered bullet count. The model is asked
	// for up to five; anything beyond that is discarded.
	maxListingBullets = 5

	defaultConfidence   = "Medium"
	defaultSellTime     = "3–9 months"
	defaultListingTitle = "Profitable business opportunity"

	// currencyPlaceholder stands in for any amount that is missing or not a
	// finite number.
	currencyPlaceholder = "-"
)

// auPrinter formats whole amounts with Australian-English digit grouping.
var auPrinter = message.NewPrinter(language.MustParse("en-AU"))

// Normalize converts the untrusted model reply into a fully-defaulted,
// render-ready result. Every field of the reply is treated as possibly
// missing or malformed; an empty reply is not an error, it simply takes
// every default.
func Normalize(raw map[string]interface{}, req *ValuationRequest) *NormalizedResult {
	res := &NormalizedResult{
		LowEstimate:      FormatCurrency(raw["lowEstimate"]),
		HighEstimate:     FormatCurrency(raw["highEstimate"]),
		RecommendedPrice: FormatCurrency(raw["recommendedPrice"]),
		MultipleRange:    textField(raw["multipleRange"]),
		Confidence:       confidenceField(raw["confidence"]),
		SellTime:         textField(raw["sellTime"]),
		Notes:            multilineField(raw["notes"]),
		ImprovementIdeas: multilineField(raw["improvementIdeas"]),
		ListingTitle:     textField(raw["listingTitle"]),
		ListingIntro:     textField(raw["listingIntro"]),
		ListingBullets:   bulletField(raw["listingBullets"]),

		AnnualProfit: FormatCurrency(req.AnnualProfit),
	}

	if req.AnnualRevenue != nil {
		res.AnnualRevenue = FormatCurrency(*req.AnnualRevenue)
	} else {
		res.AnnualRevenue = currencyPlaceholder
	}

	if res.SellTime == "" {
		res.SellTime = defaultSellTime
	}
	if res.ListingTitle == "" {
		res.ListingTitle = defaultListingTitle
	}

	return res
}

// FormatCurrency renders a whole-dollar amount with thousands grouping, or
// the placeholder when the value is missing, not a finite number, or outside
// the int64 range (the conversion is undefined past that point).
func FormatCurrency(v interface{}) string {
	f, ok := asFiniteNumber(v)
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return currencyPlaceholder
	}
	return auPrinter.Sprintf("%d", int64(math.Round(f)))
}

// asFiniteNumber accepts the numeric shapes an untrusted JSON reply can
// carry: float64, json.Number, integer types, or a numeric string.
func asFiniteNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// textField returns the trimmed string value, or "" when the field is absent
// or not a string. Never the literal "undefined" or "null".
func textField(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// confidenceField canonicalizes the confidence level, defaulting anything
// outside the closed set to Medium.
func confidenceField(v interface{}) string {
	switch strings.ToLower(textField(v)) {
	case "low":
		return "Low"
	case "high":
		return "High"
	case "medium":
		return "Medium"
	default:
		return defaultConfidence
	}
}

// multilineField escapes the text and converts embedded newlines to explicit
// <br> markers for HTML rendering. Absent values render as the empty string.
func multilineField(v interface{}) template.HTML {
	s := textField(v)
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

// bulletField keeps at most maxListingBullets non-empty string entries.
// Anything that is not an ordered sequence is treated as empty.
func bulletField(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}

	bullets := make([]string, 0, maxListingBullets)
	for _, item := range items {
		if len(bullets) == maxListingBullets {
			break
		}
		if item == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(item))
		if s == "" {
			continue
		}
		bullets = append(bullets, s)
	}
	return bullets
}
