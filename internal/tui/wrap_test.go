package tui

import (
	"testing"

	"github.com/verte-zerg/sidebyside/internal/highlight"
)

func wrapPlain(text string, width int) string {
	return wrapStyledRunes(buildCodeRunes([]highlight.Segment{{Text: text}}), width)
}

func TestWrapKeepsNewlines(t *testing.T) {
	got := wrapPlain("ab\ncd", 10)
	if got != "ab\ncd" {
		t.Fatalf("expected newline to survive, got %q", got)
	}
}

func TestWrapBreaksAfterLastSpace(t *testing.T) {
	got := wrapPlain("hello world", 8)
	if got != "hello \nworld" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapHardBreaksLongWords(t *testing.T) {
	got := wrapPlain("abcdefgh", 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapDoesNotBreakInsideIndentation(t *testing.T) {
	got := wrapPlain("    foo bar", 6)
	if got != "    fo\no bar" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestBuildCodeRunesExpandsTabs(t *testing.T) {
	runes := buildCodeRunes([]highlight.Segment{{Text: "\tx\r"}})
	if len(runes) != tabWidth+1 {
		t.Fatalf("expected %d runes, got %d", tabWidth+1, len(runes))
	}
	if got := renderStyledRunes(runes); got != "  x" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestBuildCodeRunesWideRunes(t *testing.T) {
	runes := buildCodeRunes([]highlight.Segment{{Text: "界a"}})
	if runes[0].width != 2 || runes[1].width != 1 {
		t.Fatalf("unexpected widths: %d %d", runes[0].width, runes[1].width)
	}
	if got := wrapStyledRunes(runes, 2); got != "界\na" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}
