package highlight

import (
	"strings"

	"golang.org/x/net/html"
)

// Segment is a run of text sharing one color and slant.
type Segment struct {
	Text   string
	Color  string
	Italic bool
}

type spanStyle struct {
	color  string
	italic bool
}

// Segments tokenizes highlighted markup into styled text runs. Nested spans
// inherit from their parent and the innermost color wins. Entities are
// unescaped, so joining the Text of every segment gives back the source.
func Segments(markup string) []Segment {
	z := html.NewTokenizer(strings.NewReader(markup))
	stack := []spanStyle{{}}
	var out []Segment
	for {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "span" {
				continue
			}
			st := stack[len(stack)-1]
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "style" {
					st = parseStyle(string(val), st)
				}
			}
			stack = append(stack, st)
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "span" && len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case html.TextToken:
			text := string(z.Text())
			if text == "" {
				continue
			}
			st := stack[len(stack)-1]
			if n := len(out); n > 0 && out[n-1].Color == st.color && out[n-1].Italic == st.italic {
				out[n-1].Text += text
				continue
			}
			out = append(out, Segment{Text: text, Color: st.color, Italic: st.italic})
		}
	}
}

func parseStyle(style string, inherited spanStyle) spanStyle {
	st := inherited
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(strings.ToLower(prop))
		value = strings.TrimSpace(value)
		switch prop {
		case "color":
			st.color = value
		case "font-style":
			st.italic = strings.EqualFold(value, "italic")
		}
	}
	return st
}

// PlainText strips markup and returns the unescaped source text.
func PlainText(markup string) string {
	var b strings.Builder
	for _, seg := range Segments(markup) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
