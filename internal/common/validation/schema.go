package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// tagRequestSchema is the JSON schema for the POST /tag body. text is the only
// required field; the three flags default server-side when omitted.
var tagRequestSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"text": map[string]interface{}{
			"type": "string",
		},
		"splitSentences": map[string]interface{}{
			"type": "boolean",
		},
		"includeLemma": map[string]interface{}{
			"type": "boolean",
		},
		"includeMorph": map[string]interface{}{
			"type": "boolean",
		},
	},
	"required":             []interface{}{"text"},
	"additionalProperties": false,
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateTagRequest checks a decoded request body against the tag request schema.
func ValidateTagRequest(body map[string]interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(tagRequestSchema)
	documentLoader := gojsonschema.NewGoLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}, nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return &ValidationResult{Valid: false, Errors: messages}, nil
}

// ErrorMessage flattens validation errors into a single detail string.
func (vr *ValidationResult) ErrorMessage() string {
	return strings.Join(vr.Errors, "; ")
}
