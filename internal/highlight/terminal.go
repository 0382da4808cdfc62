package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style returns the lipgloss style for a segment.
func (s Segment) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Color != "" {
		style = style.Foreground(lipgloss.Color(s.Color))
	}
	if s.Italic {
		style = style.Italic(true)
	}
	return style
}

// RenderANSI converts highlighted markup into terminal text. Each line of a
// segment is rendered on its own so lipgloss does not pad lines to a common
// width.
func RenderANSI(markup string) string {
	var b strings.Builder
	for _, seg := range Segments(markup) {
		style := seg.Style()
		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line == "" {
				continue
			}
			b.WriteString(style.Render(line))
		}
	}
	return b.String()
}
