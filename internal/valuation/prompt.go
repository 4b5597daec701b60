package valuation

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildPrompt renders the valuation instruction for the language model. The
// output is deterministic: the same request always produces byte-identical
// text, which keeps the prompt testable.
func BuildPrompt(req *ValuationRequest) string {
	var parts []string

	parts = append(parts, "You are an experienced Australian business broker preparing a sale-price appraisal for a small business owner.")
	parts = append(parts, "Value the business as a sale-price multiple of owner's earnings (SDE), typically in the 1x-4x range, adjusted for risk factors such as business age, niche concentration, and operational stability.")

	parts = append(parts, "\nBusiness details:")
	parts = append(parts, fmt.Sprintf("- Business type: %s", req.BusinessType))
	parts = append(parts, fmt.Sprintf("- Location: %s", orNotProvided(req.Location)))
	parts = append(parts, fmt.Sprintf("- Annual revenue (AUD): %s", numberOrNotProvided(req.AnnualRevenue)))
	parts = append(parts, fmt.Sprintf("- Annual profit / owner's earnings (AUD): %s", formatNumber(req.AnnualProfit)))
	parts = append(parts, fmt.Sprintf("- Years operating: %s", numberOrNotProvided(req.YearsOperating)))
	parts = append(parts, fmt.Sprintf("- Staff count: %s", numberOrNotProvided(req.StaffCount)))

	parts = append(parts, "\nRespond with a single JSON object containing exactly these keys and no others:")
	parts = append(parts, `- "lowEstimate" (number): conservative sale price in whole AUD`)
	parts = append(parts, `- "highEstimate" (number): optimistic sale price in whole AUD`)
	parts = append(parts, `- "recommendedPrice" (number): recommended asking price in whole AUD`)
	parts = append(parts, `- "multipleRange" (string): the earnings multiple range applied, e.g. "2.0x-2.8x"`)
	parts = append(parts, `- "confidence" (string): one of "Low", "Medium", "High"`)
	parts = append(parts, `- "sellTime" (string): expected time to sell, e.g. "3-9 months"`)
	parts = append(parts, `- "notes" (string): valuation reasoning as short points separated by newline characters`)
	parts = append(parts, `- "improvementIdeas" (string): ways to lift the sale price, short points separated by newline characters`)
	parts = append(parts, `- "listingTitle" (string): a punchy for-sale listing headline`)
	parts = append(parts, `- "listingIntro" (string): one short paragraph introducing the listing`)
	parts = append(parts, `- "listingBullets" (array of up to 5 short strings): listing selling points`)
	parts = append(parts, `- "imageCategory" (string): one of "cafe", "restaurant", "retail", "services", "trades", "beauty", "fitness", "healthcare", "automotive", "online", "generic"`)

	parts = append(parts, "\nReturn only the minified JSON object. Do not include markdown formatting, backticks, or any text before or after it.")

	return strings.Join(parts, "\n")
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not provided"
	}
	return s
}

func numberOrNotProvided(v *float64) string {
	if v == nil {
		return "not provided"
	}
	return formatNumber(*v)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
