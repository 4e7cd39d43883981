// Package rewrite finds fenced code blocks in an HTML document
// and replaces them with syntax-highlighted markup.
//
// The document is treated as raw text:
// a single pattern matches well-formed
// <pre...><code...>...</code></pre> spans,
// and everything outside a rewritten span
// is preserved byte-for-byte.
// Malformed or nested markup is out of scope;
// a block the pipeline cannot handle passes through unchanged.
package rewrite

import (
	"log"
	"regexp"
	"strings"

	"go.abhg.dev/hilite/internal/attr"
	"go.abhg.dev/hilite/internal/entity"
	"go.abhg.dev/hilite/internal/langs"
)

// MarkerClass is the class token added to the pre and code tags
// of every rewritten block, marking it as highlighted.
const MarkerClass = "sourceCode"

// _block matches one fenced code block.
// The body is matched lazily and may span lines;
// nested markup inside it is opaque text.
var _block = regexp.MustCompile(
	`(?s)<pre([^>]*)>\s*<code([^>]*)>(.*?)</code>\s*</pre>`)

// Engine turns raw source code in a named language
// into an HTML fragment with per-token annotations.
type Engine interface {
	Highlight(language, source string) (string, error)
}

// Rewriter rewrites fenced code blocks in HTML documents.
type Rewriter struct {
	// Registry of languages worth highlighting.
	Registry *langs.Registry

	// Engine renders the decoded source of each block.
	Engine Engine

	// DebugLog, if set, records blocks that were matched
	// but left unchanged. Skipping is not an error;
	// by default it is silent.
	DebugLog *log.Logger
}

// Rewrite returns doc with every matched code block
// that names a supported language replaced by highlighted markup.
// All other text, including blocks that name no supported language
// or that the engine rejects, is returned unchanged.
func (r *Rewriter) Rewrite(doc string) string {
	return _block.ReplaceAllStringFunc(doc, r.rewriteBlock)
}

func (r *Rewriter) rewriteBlock(block string) string {
	m := _block.FindStringSubmatch(block)
	preAttrs, codeAttrs, body := m[1], m[2], m[3]

	lang, ok := r.resolveLanguage(codeAttrs, preAttrs)
	if !ok {
		return block
	}

	rendered, err := r.Engine.Highlight(lang, entity.Decode(body))
	if err != nil {
		if r.DebugLog != nil {
			r.DebugLog.Printf("skipping %v block: %v", lang, err)
		}
		return block
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + MarkerClass + `"><pre`)
	sb.WriteString(attr.MergeClasses(preAttrs, MarkerClass))
	sb.WriteString("><code")
	sb.WriteString(attr.MergeClasses(codeAttrs, MarkerClass, lang))
	sb.WriteString(">")
	sb.WriteString(rendered)
	sb.WriteString("</code></pre></div>")
	return sb.String()
}

// resolveLanguage picks the block's language:
// the first registered class token on the code tag wins,
// then the first on the pre tag,
// so a per-block hint overrides a block-level default.
func (r *Rewriter) resolveLanguage(codeAttrs, preAttrs string) (string, bool) {
	for _, attrs := range []string{codeAttrs, preAttrs} {
		value, ok := attr.ExtractClass(attrs)
		if !ok {
			continue
		}
		for _, tok := range strings.Fields(value) {
			if r.Registry.Supports(tok) {
				return tok, true
			}
		}
	}
	return "", false
}
