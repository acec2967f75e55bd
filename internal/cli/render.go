package cli

import (
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	key   lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		key: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		value: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
	}
}

func (s styles) pair(key, value string) string {
	return s.key.Render(key) + " = " + s.value.Render(value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
