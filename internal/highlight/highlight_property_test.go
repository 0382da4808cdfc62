package highlight

import (
	"html"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var spanTagRe = regexp.MustCompile(`<span style="[^"]*">|</span>`)

func stripSpans(markup string) string {
	return spanTagRe.ReplaceAllString(markup, "")
}

// codeLike builds strings out of fragments that trigger every pass, including
// overlapping ones.
func codeLike() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf(
		"const", "return", "this", "x", " ", "\n", "=", "(", ")", "{", "}",
		"'a'", "'", `"b c"`, `"`, "`tpl`", "`", "// note", "/*", "*/", "42", "7",
		"Foo", "Component", "@Input", "@", "<", ">", "&", "&amp;", "&#39;", ";",
	), reflect.TypeOf("")).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func TestHighlightProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("no raw angle brackets survive from the input", prop.ForAll(
		func(s string) bool {
			stripped := stripSpans(Highlight(s))
			return !strings.ContainsAny(stripped, "<>")
		},
		gen.AnyString(),
	))

	properties.Property("stripping spans and unescaping restores arbitrary input", prop.ForAll(
		func(s string) bool {
			return html.UnescapeString(stripSpans(Highlight(s))) == s
		},
		gen.AnyString(),
	))

	properties.Property("stripping spans and unescaping restores code-like input", prop.ForAll(
		func(s string) bool {
			return html.UnescapeString(stripSpans(Highlight(s))) == s
		},
		codeLike(),
	))

	properties.Property("segments reproduce code-like input", prop.ForAll(
		func(s string) bool {
			return PlainText(Highlight(s)) == s
		},
		codeLike(),
	))

	properties.Property("span tags stay balanced", prop.ForAll(
		func(s string) bool {
			out := Highlight(s)
			return strings.Count(out, "<span ") == strings.Count(out, "</span>")
		},
		codeLike(),
	))

	properties.TestingRun(t)
}
