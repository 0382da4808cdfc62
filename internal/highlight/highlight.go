// Package highlight turns source snippets into HTML-safe markup with inline
// color spans, and converts that markup back into styled terminal runs.
//
// The default engine is a heuristic: it escapes the text and then applies a
// fixed, ordered list of regular-expression passes. There is no parser. Later
// passes run over the whole string, so they can wrap text that an earlier pass
// already wrapped (a capitalized word inside a string literal ends up in two
// nested spans). The output stays well-formed either way.
package highlight

import (
	"regexp"
	"strings"
)

// Colors used by the heuristic passes.
const (
	ColorKeyword   = "#c084fc"
	ColorDecorator = "#f59e0b"
	ColorString    = "#86efac"
	ColorComment   = "#64748b"
	ColorNumber    = "#fb923c"
	ColorType      = "#67e8f9"
)

var keywords = []string{
	"import", "export", "from", "const", "let", "var", "function", "class",
	"interface", "type", "return", "if", "else", "for", "while", "new", "async",
	"await", "extends", "implements", "default", "readonly", "private", "public",
	"protected", "static", "abstract", "declare", "enum", "namespace", "module",
	"as", "of", "in", "instanceof", "typeof", "void", "null", "undefined", "true",
	"false", "this", "super",
}

type pass struct {
	name string
	re   *regexp.Regexp
	open string
}

const closeTag = "</span>"

// Order matters: each pass sees the output of the previous ones.
var passes = []pass{
	{name: "keyword", re: regexp.MustCompile(`\b(?:` + strings.Join(keywords, "|") + `)\b`), open: spanOpen(ColorKeyword, false)},
	{name: "decorator", re: regexp.MustCompile(`@\w+`), open: spanOpen(ColorDecorator, false)},
	{name: "string", re: regexp.MustCompile("&apos;.*?&apos;|&quot;.*?&quot;|`[^`]*`"), open: spanOpen(ColorString, false)},
	{name: "line-comment", re: regexp.MustCompile(`//[^\n]*`), open: spanOpen(ColorComment, true)},
	{name: "block-comment", re: regexp.MustCompile(`(?s)/\*.*?\*/`), open: spanOpen(ColorComment, true)},
	{name: "number", re: regexp.MustCompile(`\b\d+\b`), open: spanOpen(ColorNumber, false)},
	{name: "type", re: regexp.MustCompile(`\b[A-Z][a-zA-Z0-9]*\b`), open: spanOpen(ColorType, false)},
}

func spanOpen(color string, italic bool) string {
	if italic {
		return `<span style="color:` + color + `;font-style:italic">`
	}
	return `<span style="color:` + color + `">`
}

// Highlight escapes text and applies the heuristic coloring passes. The
// passes are the same for every language. It never fails; empty input yields
// empty output.
func Highlight(text string) string {
	if text == "" {
		return ""
	}
	out := Escape(text)
	for _, p := range passes {
		out = p.re.ReplaceAllString(out, p.open+"${0}"+closeTag)
	}
	return out
}

// Escape replaces the HTML-significant characters with named entities.
// Ampersand goes first so later entities are not escaped again. Named
// entities are used throughout because the number pass would split numeric
// ones such as &#39;.
func Escape(text string) string {
	out := strings.ReplaceAll(text, "&", "&amp;")
	out = strings.ReplaceAll(out, "<", "&lt;")
	out = strings.ReplaceAll(out, ">", "&gt;")
	out = strings.ReplaceAll(out, `"`, "&quot;")
	out = strings.ReplaceAll(out, "'", "&apos;")
	return out
}
