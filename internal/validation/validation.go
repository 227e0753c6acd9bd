// Package validation checks catalog content documents against their JSON
// schemas before the Go-side loaders decode them. Schema violations are a
// content-authoring defect and fail loading, never a runtime query error.
package validation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed *.json
var schemaFS embed.FS

// Schema names for the three content document shapes.
const (
	SchemaEntryCatalog    = "entry-catalog.json"
	SchemaGlossaryTable   = "glossary-table.json"
	SchemaCheatSheetTable = "cheatsheet-table.json"
)

// Error collects the individual schema violations found in one document.
type Error struct {
	Violations []string
}

func (e Error) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// ValidateYAML parses yamlContent and validates it against the named
// embedded schema.
func ValidateYAML(schemaName string, yamlContent []byte) error {
	var data interface{}
	if err := yaml.Unmarshal(yamlContent, &data); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return validate(schemaName, data)
}

func validate(schemaName string, data interface{}) error {
	schemaData, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	schema, err := jsonschema.CompileString(schemaName, string(schemaData))
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(data); err != nil {
		var violations []string
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			for _, cause := range validationErr.Causes {
				violations = append(violations, cause.Message)
			}
			if len(violations) == 0 {
				violations = append(violations, validationErr.Message)
			}
		} else {
			violations = append(violations, err.Error())
		}
		return Error{Violations: violations}
	}

	return nil
}
