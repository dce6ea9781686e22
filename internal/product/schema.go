package product

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var configSchema = jsonschema.MustCompileString("product-config.json", schemaJSON)

// ValidateSchema checks a raw JSON document against the product config
// schema before it is decoded into typed structs. Schema failures carry
// the offending JSON pointer, which endpoints surface verbatim.
func ValidateSchema(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid JSON in request body: %w", err)
	}
	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("product config schema violation: %w", err)
	}
	return nil
}
