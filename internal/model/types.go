// Package model defines shared data structures.
package model

import "time"

// Language is a snippet language tag such as "tsx" or "angular-ts".
type Language string

// Known language tags.
const (
	LangTypeScript Language = "typescript"
	LangAngularTS  Language = "angular-ts"
	LangTSX        Language = "tsx"
	LangJSX        Language = "jsx"
	LangHTML       Language = "html"
	LangCSS        Language = "css"
)

// CodeSnippet is an immutable piece of example source code.
type CodeSnippet struct {
	Text     string   `yaml:"code"`
	Language Language `yaml:"lang"`
}

// Comparison pairs a React snippet with its Angular counterpart. Some
// Angular features have no React counterpart; React is then empty.
type Comparison struct {
	Title        string      `yaml:"title"`
	Description  string      `yaml:"description"`
	ReactLabel   string      `yaml:"react_label"`
	AngularLabel string      `yaml:"angular_label"`
	React        CodeSnippet `yaml:"react"`
	Angular      CodeSnippet `yaml:"angular"`
}

// HasReact reports whether the comparison carries a React snippet.
func (c Comparison) HasReact() bool {
	return c.React.Text != ""
}

// Demo names the live demo attached to a section.
type Demo string

// Live demos.
const (
	DemoNone         Demo = ""
	DemoCounter      Demo = "counter"
	DemoTodos        Demo = "todos"
	DemoPassword     Demo = "password"
	DemoStopwatch    Demo = "stopwatch"
	DemoPrimes       Demo = "primes"
	DemoPosts        Demo = "posts"
	DemoStorage      Demo = "storage"
	DemoRegistration Demo = "registration"
)

// Section is one page of the catalog.
type Section struct {
	Path        string       `yaml:"path"`
	Label       string       `yaml:"label"`
	Icon        string       `yaml:"icon"`
	Category    string       `yaml:"category"`
	Title       string       `yaml:"title"`
	Subtitle    string       `yaml:"subtitle"`
	Notes       string       `yaml:"notes"`
	Demo        Demo         `yaml:"demo"`
	Comparisons []Comparison `yaml:"comparisons"`
}

// TodoItem is a single entry of the todo store.
type TodoItem struct {
	ID   int64
	Text string
	Done bool
}

// User is the logged-in user persisted under the session key.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// StorageItem is a demo key/value entry with the prefix stripped.
type StorageItem struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Post is a placeholder API post.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
