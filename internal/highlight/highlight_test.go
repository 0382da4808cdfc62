package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/sidebyside/internal/model"
)

func TestHighlightEmpty(t *testing.T) {
	assert.Equal(t, "", Highlight(""))
}

func TestEscapeAmpersandFirst(t *testing.T) {
	got := Escape(`<a href="x">&'</a>`)
	assert.Equal(t, `&lt;a href=&quot;x&quot;&gt;&amp;&apos;&lt;/a&gt;`, got)
	assert.Equal(t, "&amp;amp;", Escape("&amp;"))
}

func TestHighlightPasses(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", "const x", `<span style="color:#c084fc">const</span> x`},
		{"keyword needs whole word", "constant", "constant"},
		{"single quoted string", "'hi'", `<span style="color:#86efac">&apos;hi&apos;</span>`},
		{"double quoted string", `"hi"`, `<span style="color:#86efac">&quot;hi&quot;</span>`},
		{"template literal", "`hi`", "<span style=\"color:#86efac\">`hi`</span>"},
		{"line comment", "// note", `<span style="color:#64748b;font-style:italic">// note</span>`},
		{"block comment", "/* a\nb */", "<span style=\"color:#64748b;font-style:italic\">/* a\nb */</span>"},
		{"number", "x = 42", `x = <span style="color:#fb923c">42</span>`},
		{"digits inside word", "v2", "v2"},
		{"type name", "Foo bar", `<span style="color:#67e8f9">Foo</span> bar`},
		{"decorator nests type", "@Input", `<span style="color:#f59e0b">@<span style="color:#67e8f9">Input</span></span>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Highlight(tc.in))
		})
	}
}

func TestHighlightNestsTypeInsideString(t *testing.T) {
	got := Highlight(`'Hello'`)
	want := `<span style="color:#86efac">&apos;<span style="color:#67e8f9">Hello</span>&apos;</span>`
	assert.Equal(t, want, got)
}

func TestHighlightEscapesMarkup(t *testing.T) {
	got := Highlight("<div>{count()}</div>")
	stripped := stripSpans(got)
	assert.NotContains(t, stripped, "<")
	assert.NotContains(t, stripped, ">")
	assert.Contains(t, got, "&lt;div&gt;")
}

func TestPlainTextRoundTrip(t *testing.T) {
	src := `import { Component, signal } from '@angular/core';

@Component({ selector: "app-counter" })
export class CounterComponent {
  // Angular Signals
  count = signal(0);
  /* derived */
  doubled = computed(() => this.count() * 2 < 10 && true);
}`
	assert.Equal(t, src, PlainText(Highlight(src)))
}

func TestSegmentsInheritAndOverride(t *testing.T) {
	segs := Segments(Highlight("@Input"))
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Text: "@", Color: ColorDecorator}, segs[0])
	assert.Equal(t, Segment{Text: "Input", Color: ColorType}, segs[1])

	segs = Segments(Highlight("// Todo 1"))
	for _, seg := range segs {
		assert.True(t, seg.Italic, "segment %q should stay italic inside the comment", seg.Text)
	}
}

func TestSegmentsMergeAdjacentRuns(t *testing.T) {
	segs := Segments(`a<span style="color:#fff">b</span><span style="color:#fff">c</span>d`)
	require.Len(t, segs, 3)
	assert.Equal(t, "bc", segs[1].Text)
}

func TestRenderANSIKeepsLines(t *testing.T) {
	src := "const a = 1;\n\nconst b = 'two';"
	out := RenderANSI(Highlight(src))
	assert.Equal(t, strings.Count(src, "\n"), strings.Count(out, "\n"))
	assert.Contains(t, out, "const")
	assert.Contains(t, out, "two")
}

func TestDisplayNameAndBadge(t *testing.T) {
	assert.Equal(t, "React TSX", DisplayName(model.LangTSX))
	assert.Equal(t, "Angular", DisplayName(model.LangAngularTS))
	assert.Equal(t, "rust", DisplayName(model.Language("rust")))
	assert.Equal(t, BadgeReact, BadgeFor(model.LangJSX))
	assert.Equal(t, BadgeAngular, BadgeFor(model.LangTypeScript))
	assert.Equal(t, BadgeNeutral, BadgeFor(model.LangCSS))
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineHeuristic, e)

	e, err = ParseEngine(" Chroma ")
	require.NoError(t, err)
	assert.Equal(t, EngineChroma, e)

	_, err = ParseEngine("prism")
	assert.Error(t, err)
}

func TestChromaEngineKeepsText(t *testing.T) {
	src := "const [count, setCount] = useState(0);"
	out := EngineChroma.Highlight(src, model.LangTSX)
	assert.Contains(t, out, "<span")
	assert.Contains(t, PlainText(out), "useState(0)")
}

func TestCacheMemoizes(t *testing.T) {
	c := NewCache(EngineHeuristic)
	snippet := model.CodeSnippet{Text: "let x = 1", Language: model.LangTypeScript}
	first := c.Markup(snippet)
	second := c.Markup(snippet)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, EngineHeuristic, c.Engine())
}

func TestHeuristicEngineIgnoresLanguage(t *testing.T) {
	src := "@Component class App { count = signal(0); } // 'x'"
	want := Highlight(src)
	for _, lang := range []model.Language{model.LangTSX, model.LangAngularTS, model.LangHTML, model.LangCSS, "unknown"} {
		assert.Equal(t, want, EngineHeuristic.Highlight(src, lang), "lang %s", lang)
	}
}
