package highlight

import (
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
)

// A CategoryIndex is a read-only table mapping Chroma token types
// to dotted token categories.
//
// Lookups fall back from the exact token type to its sub-category
// and then its category, so mapping [chroma.LiteralString] covers
// every string flavor a lexer can emit.
type CategoryIndex struct {
	names   map[chroma.TokenType]string
	classes map[chroma.TokenType]string // names with '.' as ' '
}

// NewCategoryIndex builds an index from token types
// to dotted category names.
func NewCategoryIndex(names map[chroma.TokenType]string) *CategoryIndex {
	ix := CategoryIndex{
		names:   make(map[chroma.TokenType]string, len(names)),
		classes: make(map[chroma.TokenType]string, len(names)),
	}
	for t, name := range names {
		ix.names[t] = name
		ix.classes[t] = strings.ReplaceAll(name, ".", " ")
	}
	return &ix
}

// Name returns the dotted category name for the given token type.
func (ix *CategoryIndex) Name(t chroma.TokenType) (string, bool) {
	for _, t := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if name, ok := ix.names[t]; ok {
			return name, true
		}
	}
	return "", false
}

// Classes returns the class list for the given token type:
// the dotted category name with each segment as a separate class.
func (ix *CategoryIndex) Classes(t chroma.TokenType) (string, bool) {
	for _, t := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if classes, ok := ix.classes[t]; ok {
			return classes, true
		}
	}
	return "", false
}

// DefaultCategories classifies Chroma's token types
// with the stock capture names.
// Token types not covered here render as plain text.
var DefaultCategories = NewCategoryIndex(map[chroma.TokenType]string{
	chroma.Keyword:            "keyword",
	chroma.KeywordConstant:    "constant.builtin",
	chroma.KeywordDeclaration: "keyword",
	chroma.KeywordNamespace:   "keyword.control.import",
	chroma.KeywordType:        "type.builtin",

	chroma.NameAttribute: "attribute",
	chroma.NameBuiltin:   "function.builtin",
	chroma.NameClass:     "type",
	chroma.NameConstant:  "constant",
	chroma.NameDecorator: "attribute",
	chroma.NameFunction:  "function",
	chroma.NameLabel:     "label",
	chroma.NameNamespace: "module",
	chroma.NameProperty:  "property",
	chroma.NameTag:       "tag",
	chroma.NameVariable:  "variable",

	chroma.LiteralString:       "string",
	chroma.LiteralStringEscape: "escape",
	chroma.LiteralNumber:       "number",

	chroma.Comment:        "comment",
	chroma.CommentPreproc: "keyword.directive",

	chroma.Operator:     "operator",
	chroma.OperatorWord: "keyword.operator",
	chroma.Punctuation:  "punctuation.delimiter",
})
