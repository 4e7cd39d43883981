package highlight

import (
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
)

func TestCategoryIndex_fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give chroma.TokenType
		want string
	}{
		{desc: "exact", give: chroma.Keyword, want: "keyword"},
		{desc: "exact dotted", give: chroma.KeywordType, want: "type.builtin"},
		{
			desc: "subcategory",
			give: chroma.LiteralStringDouble,
			want: "string",
		},
		{
			desc: "subcategory keyword",
			give: chroma.KeywordReserved,
			want: "keyword",
		},
		{
			desc: "subcategory preproc",
			give: chroma.CommentPreprocFile,
			want: "keyword.directive",
		},
		{
			desc: "number flavors",
			give: chroma.LiteralNumberHex,
			want: "number",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			name, ok := DefaultCategories.Name(tt.give)
			assert.True(t, ok)
			assert.Equal(t, tt.want, name)
		})
	}

	t.Run("unmapped", func(t *testing.T) {
		t.Parallel()

		_, ok := DefaultCategories.Name(chroma.Text)
		assert.False(t, ok)
		_, ok = DefaultCategories.Classes(chroma.TextWhitespace)
		assert.False(t, ok)
	})
}

func TestCategoryIndex_classes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give chroma.TokenType
		want string
	}{
		{desc: "single segment", give: chroma.Comment, want: "comment"},
		{
			desc: "dot segments become classes",
			give: chroma.KeywordNamespace,
			want: "keyword control import",
		},
		{
			desc: "two segments",
			give: chroma.Punctuation,
			want: "punctuation delimiter",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			classes, ok := DefaultCategories.Classes(tt.give)
			assert.True(t, ok)
			assert.Equal(t, tt.want, classes)
		})
	}
}
