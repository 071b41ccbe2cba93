package repository

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const seedAnswersSchema = `{
	"type": "object",
	"additionalProperties": {"type": "string"}
}`

const adviceIntentsSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"patterns": {"type": "array", "items": {"type": "string"}},
				"advice": {"type": "string"}
			}
		}
	}
}`

var (
	seedSchema   = mustCompileSchema(seedAnswersSchema)
	intentSchema = mustCompileSchema(adviceIntentsSchema)
)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return compiled
}

// validateDocument checks data against schema and joins every violation
// into one error.
func validateDocument(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("document validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
