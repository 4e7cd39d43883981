package highlight

import (
	"fmt"
	"html/template"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/hilite/internal/langs"
)

// Highlighter turns raw source code into highlighted HTML.
//
// A Highlighter holds no per-call state and may be shared
// across concurrent document rewrites.
type Highlighter struct {
	// Registry of languages this highlighter can render.
	Registry *langs.Registry

	// Categories classifies token types into class lists.
	//
	// Defaults to DefaultCategories.
	Categories *CategoryIndex
}

// Highlight renders source written in the named language
// as an HTML fragment with per-token class annotations.
//
// It fails if the language is not in the registry
// or the source could not be tokenized.
func (h *Highlighter) Highlight(language, source string) (string, error) {
	lang, ok := h.Registry.Lookup(language)
	if !ok {
		return "", errtrace.Wrap(fmt.Errorf("unsupported language %q", language))
	}

	tokens, err := lang.Lex(source)
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("tokenize %v: %w", language, err))
	}

	ix := h.Categories
	if ix == nil {
		ix = DefaultCategories
	}

	var sb strings.Builder
	renderTokens(&sb, tokens, ix)
	return sb.String(), nil
}

// renderTokens writes tokens as HTML,
// wrapping each categorized token in a span
// whose classes come from the given index.
// Uncategorized tokens render as escaped text.
func renderTokens(sb *strings.Builder, tokens []chroma.Token, ix *CategoryIndex) {
	for _, tok := range tokens {
		classes, ok := ix.Classes(tok.Type)
		if !ok {
			template.HTMLEscape(sb, []byte(tok.Value))
			continue
		}
		fmt.Fprintf(sb, "<span class=%q>", classes)
		template.HTMLEscape(sb, []byte(tok.Value))
		sb.WriteString("</span>")
	}
}
