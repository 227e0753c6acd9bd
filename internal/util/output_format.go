package util

import (
	"fmt"
	"slices"
	"strings"
)

// ValidOutputFormats lists the supported output formats.
var ValidOutputFormats = []string{"text", "json", "yaml"}

// NormalizeFormat normalizes the format string to lowercase.
func NormalizeFormat(format string) string {
	return strings.ToLower(format)
}

// ValidateOutputFormat checks if the given format is valid.
func ValidateOutputFormat(format string) error {
	if !slices.Contains(ValidOutputFormats, NormalizeFormat(format)) {
		return fmt.Errorf("invalid format: %s. Valid formats are: %s",
			format, strings.Join(ValidOutputFormats, ", "))
	}
	return nil
}
