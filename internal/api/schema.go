// internal/api/schema.go
package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// recommendSchema validates the inbound recommendation payload before
// decoding. Unknown fields pass through; type and enum violations do not.
const recommendSchema = `{
	"type": "object",
	"required": ["prompt"],
	"properties": {
		"prompt": {"type": "string", "minLength": 1, "maxLength": 2000},
		"userId": {"type": "string", "maxLength": 128},
		"context": {
			"type": "object",
			"properties": {
				"previousLayouts": {"type": "array", "items": {"type": "string"}},
				"preferences": {"type": "object"},
				"category": {"type": "string"},
				"sessionData": {"type": "object"}
			}
		},
		"options": {
			"type": "object",
			"properties": {
				"maxResults": {"type": "integer", "minimum": 1, "maximum": 50},
				"includeAlternatives": {"type": "boolean"},
				"learningMode": {"type": "boolean"},
				"personalizationLevel": {"type": "string", "enum": ["low", "medium", "high"]}
			}
		}
	}
}`

// feedbackSchema validates the explicit feedback payload.
const feedbackSchema = `{
	"type": "object",
	"required": ["userId", "candidateId", "score"],
	"properties": {
		"userId": {"type": "string", "minLength": 1, "maxLength": 128},
		"candidateId": {"type": "string", "minLength": 1, "maxLength": 128},
		"score": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`

var (
	recommendValidator = gojsonschema.NewStringLoader(recommendSchema)
	feedbackValidator  = gojsonschema.NewStringLoader(feedbackSchema)
)

func validateJSON(schema gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
