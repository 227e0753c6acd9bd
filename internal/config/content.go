package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ContentConfig represents the optional .toolbridge.yml file inside an
// external content directory.
type ContentConfig struct {
	// Glob patterns selecting table documents within the directory
	Patterns []string `yaml:"patterns,omitempty"`
}

// LoadContentConfig attempts to load .toolbridge.yml from the content
// directory. Returns an empty config if the file doesn't exist (not an
// error).
func LoadContentConfig(contentDir string) (*ContentConfig, error) {
	configPath := filepath.Join(contentDir, ".toolbridge.yml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &ContentConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config ContentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// MergePatterns merges config patterns with CLI patterns, deduplicated,
// config patterns first.
func (c *ContentConfig) MergePatterns(cliPatterns []string) []string {
	if c == nil {
		return cliPatterns
	}

	seen := make(map[string]bool)
	var result []string
	for _, pattern := range append(append([]string{}, c.Patterns...), cliPatterns...) {
		if !seen[pattern] {
			seen[pattern] = true
			result = append(result, pattern)
		}
	}
	return result
}
