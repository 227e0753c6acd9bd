package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/toolbridge/toolbridge/internal/types"
	"github.com/toolbridge/toolbridge/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed entries.yaml
var entriesData []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog built from the embedded entry
// table. It is loaded once; the result is immutable and safe to share.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(entriesData)
	})
	return defaultCatalog, defaultErr
}

// Load validates and decodes an entry catalog document.
func Load(data []byte) (*Catalog, error) {
	if err := validation.ValidateYAML(validation.SchemaEntryCatalog, data); err != nil {
		return nil, fmt.Errorf("invalid entry catalog: %w", err)
	}

	var doc struct {
		Entries []yaml.Node `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse entry catalog: %w", err)
	}

	entries := make([]types.Entry, 0, len(doc.Entries))
	for i := range doc.Entries {
		entry, err := decodeEntry(&doc.Entries[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return New(entries)
}

// decodeEntry reads the kind tag first, then decodes the node into the
// matching variant.
func decodeEntry(node *yaml.Node) (types.Entry, error) {
	var probe struct {
		Kind types.Kind `yaml:"kind"`
	}
	if err := node.Decode(&probe); err != nil {
		return nil, fmt.Errorf("failed to read entry kind: %w", err)
	}

	switch probe.Kind {
	case types.KindComparison:
		var entry types.Comparison
		if err := node.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode comparison entry: %w", err)
		}
		return &entry, nil
	case types.KindSingleTool:
		var entry types.SingleTool
		if err := node.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode single-tool entry: %w", err)
		}
		return &entry, nil
	default:
		return nil, fmt.Errorf("unknown entry kind %q", probe.Kind)
	}
}
