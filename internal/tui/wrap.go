package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/sidebyside/internal/highlight"
)

const tabWidth = 2

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

// buildCodeRunes styles every rune of the highlighted segments. Newlines
// become break markers and tabs expand to spaces.
func buildCodeRunes(segments []highlight.Segment) []styledRune {
	out := make([]styledRune, 0, 256)
	for _, seg := range segments {
		style := seg.Style()
		for _, r := range seg.Text {
			switch r {
			case '\n':
				out = append(out, styledRune{isBreak: true})
			case '\r':
			case '\t':
				for i := 0; i < tabWidth; i++ {
					out = append(out, styledRune{s: " ", width: 1, isSpace: true})
				}
			default:
				out = append(out, styledRune{
					s:       renderRune(style, r),
					width:   runewidth.RuneWidth(r),
					isSpace: r == ' ',
				})
			}
		}
	}
	return out
}

func renderRune(style lipgloss.Style, r rune) string {
	if r == ' ' {
		return " "
	}
	return style.Render(string(r))
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines wider than width, preferring the position
// after the last space. Spaces are kept so indentation survives.
func wrapStyledRunes(runes []styledRune, width int) string {
	var out strings.Builder
	line := make([]styledRune, 0, 128)
	lineWidth := 0
	lastSpaceIdx := -1

	flush := func() {
		out.WriteString(renderStyledRunes(line))
		out.WriteRune('\n')
	}

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.isBreak {
			flush()
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if width > 0 && lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 && lastSpaceIdx < len(line)-1 && !onlySpaces(line[:lastSpaceIdx+1]) {
				rest := append([]styledRune{}, line[lastSpaceIdx+1:]...)
				line = line[:lastSpaceIdx+1]
				flush()
				line = rest
			} else {
				flush()
				line = line[:0]
			}
			lineWidth = lineWidthOf(line)
			lastSpaceIdx = lastSpaceIndex(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func onlySpaces(line []styledRune) bool {
	for _, item := range line {
		if !item.isSpace {
			return false
		}
	}
	return true
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
