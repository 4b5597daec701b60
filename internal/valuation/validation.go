package valuation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"bizval-service/internal/common/errors"
)

// requestSchema is the inbound contract: businessType, annualProfit, and
// email must be present and non-empty before any external call is made.
// Email format is not checked beyond presence; the delivery provider is the
// authority on deliverability.
const requestSchema = `{
	"type": "object",
	"required": ["businessType", "annualProfit", "email"],
	"properties": {
		"businessType":   {"type": "string", "minLength": 1},
		"location":       {"type": "string"},
		"annualRevenue":  {"type": ["number", "null"]},
		"annualProfit":   {"type": "number"},
		"yearsOperating": {"type": ["number", "null"]},
		"staffCount":     {"type": ["number", "null"]},
		"email":          {"type": "string", "minLength": 1}
	}
}`

var compiledRequestSchema = mustCompileSchema(requestSchema)

func mustCompileSchema(schemaJSON string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic("invalid request schema: " + err.Error())
	}
	return schema
}

// ValidateRequestBody checks the raw JSON body against the request schema.
// The field values pass through unmodified; no coercion happens here.
func ValidateRequestBody(body []byte) *errors.StandardError {
	result, err := compiledRequestSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return errors.NewValidationFailedError(strings.Join(details, "; "))
	}

	return nil
}
