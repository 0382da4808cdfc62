package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/verte-zerg/sidebyside/internal/model"
)

const chromaStyle = "dracula"

var chromaLexerNames = map[model.Language]string{
	model.LangTypeScript: "typescript",
	model.LangAngularTS:  "typescript",
	model.LangTSX:        "tsx",
	model.LangJSX:        "react",
	model.LangHTML:       "html",
	model.LangCSS:        "css",
}

// Chroma highlights text with a real lexer and inline styles. The markup uses
// the same span/style shape as Highlight, so Segments understands both.
func Chroma(text string, lang model.Language) (string, error) {
	if text == "" {
		return "", nil
	}
	lexer := lexers.Get(chromaLexerNames[lang])
	if lexer == nil {
		lexer = lexers.Get(string(lang))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.PreventSurroundingPre(true),
	)
	out := new(bytes.Buffer)
	if err := formatter.Format(out, styles.Get(chromaStyle), iterator); err != nil {
		return "", err
	}
	return out.String(), nil
}
