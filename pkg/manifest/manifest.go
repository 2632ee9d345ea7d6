// Package manifest validates the manifest.json every OWML mod ships.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FileName is the manifest every OWML mod directory must contain.
const FileName = "manifest.json"

var modSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"uniqueName":  map[string]any{"type": "string", "minLength": 1},
		"name":        map[string]any{"type": "string", "minLength": 1},
		"author":      map[string]any{"type": "string", "minLength": 1},
		"version":     map[string]any{"type": "string", "minLength": 1},
		"owmlVersion": map[string]any{"type": "string"},
		"filename":    map[string]any{"type": "string"},
	},
	"required": []string{"uniqueName", "name", "author", "version"},
}

// ValidateFile parses and validates the manifest at path.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}
	return Validate(data)
}

// Validate checks raw manifest JSON against the OWML mod schema.
func Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("manifest is not valid JSON: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(modSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to validate manifest: %w", err)
	}
	if !result.Valid() {
		var errs strings.Builder
		for _, desc := range result.Errors() {
			fmt.Fprintf(&errs, "- %s\n", desc)
		}
		return fmt.Errorf("manifest validation failed:\n%s", errs.String())
	}
	return nil
}
