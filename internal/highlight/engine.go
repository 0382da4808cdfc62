package highlight

import (
	"fmt"
	"strings"
	"sync"

	"github.com/verte-zerg/sidebyside/internal/model"
)

// Engine selects how snippets are highlighted.
type Engine string

// Supported engines.
const (
	EngineHeuristic Engine = "heuristic"
	EngineChroma    Engine = "chroma"
)

// ParseEngine validates an engine name. Empty means heuristic.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineHeuristic:
		return EngineHeuristic, nil
	case EngineChroma:
		return EngineChroma, nil
	default:
		return "", fmt.Errorf("unknown highlight engine %q (want heuristic or chroma)", name)
	}
}

// Highlight renders text with the engine. The chroma engine falls back to the
// heuristic passes if the lexer fails.
func (e Engine) Highlight(text string, lang model.Language) string {
	if e == EngineChroma {
		if out, err := Chroma(text, lang); err == nil {
			return out
		}
	}
	return Highlight(text)
}

type cacheKey struct {
	lang model.Language
	text string
}

// Cache memoizes highlighted markup per snippet for one engine.
type Cache struct {
	engine Engine

	mu      sync.Mutex
	entries map[cacheKey]string
}

// NewCache returns an empty cache bound to engine.
func NewCache(engine Engine) *Cache {
	return &Cache{engine: engine, entries: map[cacheKey]string{}}
}

// Engine reports the engine the cache renders with.
func (c *Cache) Engine() Engine {
	return c.engine
}

// Markup returns the highlighted markup for a snippet, computing it once.
func (c *Cache) Markup(snippet model.CodeSnippet) string {
	key := cacheKey{lang: snippet.Language, text: snippet.Text}
	c.mu.Lock()
	defer c.mu.Unlock()
	if out, ok := c.entries[key]; ok {
		return out
	}
	out := c.engine.Highlight(snippet.Text, snippet.Language)
	c.entries[key] = out
	return out
}

// Len reports how many snippets are cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
