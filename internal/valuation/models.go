package valuation

import "html/template"

// ValuationRequest carries the caller-supplied business details. It is
// constructed from the inbound request body, consumed once, and discarded
// after the response is sent.
type ValuationRequest struct {
	BusinessType   string   `json:"businessType"`
	Location       string   `json:"location,omitempty"`
	AnnualRevenue  *float64 `json:"annualRevenue,omitempty"`
	AnnualProfit   float64  `json:"annualProfit"`
	YearsOperating *float64 `json:"yearsOperating,omitempty"`
	StaffCount     *float64 `json:"staffCount,omitempty"`
	Email          string   `json:"email"`
}

// NormalizedResult is the fully-defaulted, render-ready view of the model's
// reply. Every field is safe to interpolate directly; the email template
// applies no further defaulting.
type NormalizedResult struct {
	LowEstimate      string
	HighEstimate     string
	RecommendedPrice string
	MultipleRange    string
	Confidence       string
	SellTime         string
	Notes            template.HTML
	ImprovementIdeas template.HTML
	ListingTitle     string
	ListingIntro     string
	ListingBullets   []string

	// Echoed from the request, formatted as currency.
	AnnualRevenue string
	AnnualProfit  string
}
