package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGlossaryTable(t *testing.T) {
	doc := []byte(`
slug: demo
kind: glossary
categories: [ONE]
rows:
  - id: one-1
    category: ONE
    from: a
    to: b
`)
	assert.NoError(t, ValidateYAML(SchemaGlossaryTable, doc))
}

func TestValidateGlossaryTableMissingField(t *testing.T) {
	doc := []byte(`
slug: demo
kind: glossary
categories: [ONE]
rows:
  - id: one-1
    category: ONE
    from: a
`)
	err := ValidateYAML(SchemaGlossaryTable, doc)
	require.Error(t, err)

	var validationErr Error
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Violations)
}

func TestValidateEntryCatalogKindEnum(t *testing.T) {
	doc := []byte(`
entries:
  - kind: lesson
    slug: demo
    category: Other
    steps: 1
    estimated_time: 5 min
    status: published
`)
	assert.Error(t, ValidateYAML(SchemaEntryCatalog, doc))
}

func TestValidateEntryCatalogStatusEnum(t *testing.T) {
	doc := []byte(`
entries:
  - kind: single_tool
    slug: demo
    tool:
      name: Demo
      description: d
    category: Other
    steps: 1
    estimated_time: 5 min
    status: draft
`)
	assert.Error(t, ValidateYAML(SchemaEntryCatalog, doc))
}

func TestValidateRejectsMalformedYAML(t *testing.T) {
	err := ValidateYAML(SchemaEntryCatalog, []byte("entries: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateUnknownSchema(t *testing.T) {
	err := ValidateYAML("no-such-schema.json", []byte("a: 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
