// Package langs holds the registry of languages
// that the rewriter knows how to highlight.
//
// The registry is built once at startup and never mutated,
// so it is safe to share across concurrent document rewrites.
package langs

import (
	"sort"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.abhg.dev/hilite/internal/must"
)

// Language is a single supported source language:
// a name as it appears in class attributes,
// bound to the lexer that tokenizes it.
type Language struct {
	name  string
	lexer chroma.Lexer
}

// NewLanguage builds a Language from a Chroma lexer.
func NewLanguage(name string, lexer chroma.Lexer) *Language {
	must.NotBeNilf(lexer, "language %q has no lexer", name)
	return &Language{name: name, lexer: chroma.Coalesce(lexer)}
}

// Name reports the name this language is registered under.
func (l *Language) Name() string { return l.name }

// Lex lexically analyzes the given source code using Chroma.
func (l *Language) Lex(source string) ([]chroma.Token, error) {
	return chroma.Tokenise(l.lexer, nil, source)
}

// Registry is a fixed set of supported languages, keyed by name.
// Names are matched case-sensitively, as written in class attributes.
type Registry struct {
	byName map[string]*Language
}

// NewRegistry builds a registry holding exactly the given languages.
func NewRegistry(languages ...*Language) *Registry {
	byName := make(map[string]*Language, len(languages))
	for _, l := range languages {
		byName[l.name] = l
	}
	return &Registry{byName: byName}
}

// _defaultNames is the stock language set.
var _defaultNames = []string{"rust", "javascript", "html", "css", "python"}

// Default builds the stock registry.
// It panics if Chroma does not ship a lexer for one of the names,
// which would be a defect in this package, not in user input.
func Default() *Registry {
	languages := make([]*Language, len(_defaultNames))
	for i, name := range _defaultNames {
		languages[i] = NewLanguage(name, lexers.Get(name))
	}
	return NewRegistry(languages...)
}

// Lookup returns the language registered under name, if any.
func (r *Registry) Lookup(name string) (*Language, bool) {
	l, ok := r.byName[name]
	return l, ok
}

// Supports reports whether name is a registered language.
func (r *Registry) Supports(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns the registered language names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
