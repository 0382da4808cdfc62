package highlight

import "github.com/verte-zerg/sidebyside/internal/model"

// Badge groups languages by the ecosystem they belong to.
type Badge string

// Badge families.
const (
	BadgeReact   Badge = "react"
	BadgeAngular Badge = "angular"
	BadgeNeutral Badge = "neutral"
)

var displayNames = map[model.Language]string{
	model.LangTypeScript: "TypeScript",
	model.LangAngularTS:  "Angular",
	model.LangTSX:        "React TSX",
	model.LangJSX:        "React JSX",
	model.LangHTML:       "HTML",
	model.LangCSS:        "CSS",
}

// DisplayName returns the label shown in a code block header. Unknown tags
// are shown as-is.
func DisplayName(lang model.Language) string {
	if name, ok := displayNames[lang]; ok {
		return name
	}
	return string(lang)
}

// BadgeFor returns the badge family for a language tag.
func BadgeFor(lang model.Language) Badge {
	switch lang {
	case model.LangTSX, model.LangJSX:
		return BadgeReact
	case model.LangTypeScript, model.LangAngularTS:
		return BadgeAngular
	default:
		return BadgeNeutral
	}
}
