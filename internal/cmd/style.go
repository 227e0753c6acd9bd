package cmd

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/toolbridge/toolbridge/internal/config"
)

// Text-output styles. Applied only when stdout is a terminal and color is
// not disabled via TOOLBRIDGE_NO_COLOR.
var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

var (
	colorOnce    sync.Once
	colorEnabled bool
)

func useColor() bool {
	colorOnce.Do(func() {
		if config.LoadSettings().NoColor {
			return
		}
		fd := os.Stdout.Fd()
		colorEnabled = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
	return colorEnabled
}

// styled renders s with style when color output is enabled.
func styled(style lipgloss.Style, s string) string {
	if !useColor() {
		return s
	}
	return style.Render(s)
}
