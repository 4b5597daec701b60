package valuation

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// emailData is the complete input to the email template. Every value has
// already passed through the normalizer; the template only substitutes.
type emailData struct {
	Result       *NormalizedResult
	BusinessType string
	Location     string
	ThumbnailURL string
	IssuedDate   string
}

var emailTemplate = template.Must(template.New("valuation-email").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Business valuation estimate</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#1f2933;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:24px 0;">
<tr><td align="center">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
<tr>
<td style="background-color:#0b3954;padding:28px 32px;">
<h1 style="margin:0;color:#ffffff;font-size:22px;">Your business valuation estimate</h1>
<p style="margin:8px 0 0;color:#bcd4e6;font-size:13px;">{{.BusinessType}}{{if .Location}} &middot; {{.Location}}{{end}} &middot; issued {{.IssuedDate}}</p>
</td>
</tr>
<tr>
<td style="padding:28px 32px;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f0f7f4;border-radius:6px;">
<tr>
<td style="padding:20px;" align="center">
<p style="margin:0;font-size:13px;color:#52606d;">Estimated sale price range (AUD)</p>
<p style="margin:6px 0 0;font-size:26px;font-weight:bold;color:#0b3954;">${{.Result.LowEstimate}} &ndash; ${{.Result.HighEstimate}}</p>
<p style="margin:10px 0 0;font-size:14px;color:#1f2933;">Recommended asking price: <strong>${{.Result.RecommendedPrice}}</strong></p>
</td>
</tr>
</table>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin-top:20px;font-size:14px;">
<tr>
<td style="padding:6px 0;color:#52606d;">Annual profit (SDE)</td>
<td style="padding:6px 0;" align="right"><strong>${{.Result.AnnualProfit}}</strong></td>
</tr>
<tr>
<td style="padding:6px 0;color:#52606d;">Annual revenue</td>
<td style="padding:6px 0;" align="right"><strong>${{.Result.AnnualRevenue}}</strong></td>
</tr>
<tr>
<td style="padding:6px 0;color:#52606d;">Multiple applied</td>
<td style="padding:6px 0;" align="right"><strong>{{.Result.MultipleRange}}</strong></td>
</tr>
<tr>
<td style="padding:6px 0;color:#52606d;">Confidence</td>
<td style="padding:6px 0;" align="right"><strong>{{.Result.Confidence}}</strong></td>
</tr>
<tr>
<td style="padding:6px 0;color:#52606d;">Expected time to sell</td>
<td style="padding:6px 0;" align="right"><strong>{{.Result.SellTime}}</strong></td>
</tr>
</table>
{{if .Result.Notes}}
<h2 style="margin:24px 0 8px;font-size:16px;color:#0b3954;">How we arrived at this</h2>
<p style="margin:0;font-size:14px;line-height:1.6;">{{.Result.Notes}}</p>
{{end}}
{{if .Result.ImprovementIdeas}}
<h2 style="margin:24px 0 8px;font-size:16px;color:#0b3954;">Ways to lift your sale price</h2>
<p style="margin:0;font-size:14px;line-height:1.6;">{{.Result.ImprovementIdeas}}</p>
{{end}}
<h2 style="margin:28px 0 8px;font-size:16px;color:#0b3954;">Your listing preview</h2>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="border:1px solid #e4e7eb;border-radius:6px;overflow:hidden;">
<tr>
<td>
<img src="{{.ThumbnailURL}}" alt="{{.BusinessType}}" width="600" style="display:block;width:100%;height:auto;">
</td>
</tr>
<tr>
<td style="padding:18px 20px;">
<h3 style="margin:0;font-size:17px;color:#1f2933;">{{.Result.ListingTitle}}</h3>
{{if .Result.ListingIntro}}<p style="margin:8px 0 0;font-size:14px;line-height:1.6;color:#3e4c59;">{{.Result.ListingIntro}}</p>{{end}}
{{if .Result.ListingBullets}}
<ul style="margin:12px 0 0;padding-left:20px;font-size:14px;line-height:1.7;color:#3e4c59;">
{{range .Result.ListingBullets}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
</td>
</tr>
</table>
</td>
</tr>
<tr>
<td style="padding:20px 32px;background-color:#f4f5f7;">
<p style="margin:0;font-size:11px;line-height:1.5;color:#7b8794;">This estimate is indicative only and is not a formal valuation or financial advice. Figures are based on the details you supplied and typical market multiples for comparable Australian small businesses.</p>
</td>
</tr>
</table>
</td></tr>
</table>
</body>
</html>
`))

// RenderEmail produces the complete HTML email for a normalized result. It
// is a pure function of its inputs plus the supplied issue time.
func RenderEmail(res *NormalizedResult, req *ValuationRequest, thumbnailURL string, issuedAt time.Time) (string, error) {
	data := emailData{
		Result:       res,
		BusinessType: req.BusinessType,
		Location:     req.Location,
		ThumbnailURL: thumbnailURL,
		IssuedDate:   issuedAt.Format("2 January 2006"),
	}

	var b strings.Builder
	if err := emailTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render valuation email: %w", err)
	}
	return b.String(), nil
}
