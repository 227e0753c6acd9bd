package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toolbridge/toolbridge/internal/config"
)

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		settings     *config.Settings
		flagPatterns []string
		wantDir      string
		wantPatterns []string
	}{
		{
			name:         "embedded when nothing configured",
			args:         nil,
			settings:     &config.Settings{},
			wantDir:      "",
			wantPatterns: []string{},
		},
		{
			name:         "content dir from settings",
			args:         nil,
			settings:     &config.Settings{ContentDir: "/srv/content"},
			wantDir:      "/srv/content",
			wantPatterns: []string{},
		},
		{
			name:         "argument wins over settings",
			args:         []string{"/tmp/other"},
			settings:     &config.Settings{ContentDir: "/srv/content"},
			wantDir:      "/tmp/other",
			wantPatterns: []string{},
		},
		{
			name:         "flag patterns follow configured ones",
			args:         []string{"/tmp/other"},
			settings:     &config.Settings{ContentPatterns: []string{"tables/*.yaml"}},
			flagPatterns: []string{"extra/*.yml"},
			wantDir:      "/tmp/other",
			wantPatterns: []string{"tables/*.yaml", "extra/*.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, patterns := validateTarget(tt.args, tt.settings, tt.flagPatterns)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantPatterns, patterns)
		})
	}
}
