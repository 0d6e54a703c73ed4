package validate

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema returns a conversion validator that checks JSON text input
// against the given JSON schema definition. The definition may be a
// Go value (maps, slices) or anything marshalable to a schema
// document; it is compiled once, at construction.
//
// Check passes iff the input parses as JSON and satisfies the schema.
// Convert returns the parsed JSON value.
func Schema(name string, definition any) (Validator, error) {
	// The jsonschema library expects a parsed JSON value (any), not
	// raw bytes. Marshal then unmarshal to get a clean representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return nil, &ConversionError{Message: "must be valid JSON", Err: err}
		}
		if err := compiled.Validate(parsed); err != nil {
			return nil, &ConversionError{Message: "does not match the expected shape", Err: err}
		}
		return parsed, nil
	}), nil
}
