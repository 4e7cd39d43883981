// Package attr manipulates the class attribute
// inside a raw HTML attribute string,
// the text between a tag name and its closing '>'.
//
// The string is treated as opaque text, not parsed into a map:
// attributes other than class pass through byte-for-byte.
package attr

import (
	"regexp"
	"slices"
	"strings"
)

var (
	// Extraction wants a non-empty value;
	// an empty class attribute is the same as no class attribute.
	_doubleQuoted = regexp.MustCompile(`class\s*=\s*"([^"]+)"`)
	_singleQuoted = regexp.MustCompile(`class\s*=\s*'([^']+)'`)

	// Merging rewrites empty values too.
	_doubleQuotedAny = regexp.MustCompile(`class\s*=\s*"([^"]*)"`)
	_singleQuotedAny = regexp.MustCompile(`class\s*=\s*'([^']*)'`)
)

// ExtractClass returns the value of the first class attribute in attrs.
// Double-quoted syntax is tried first, then single-quoted.
// The value is returned as written, not split into tokens.
func ExtractClass(attrs string) (string, bool) {
	for _, re := range []*regexp.Regexp{_doubleQuoted, _singleQuoted} {
		if m := re.FindStringSubmatch(attrs); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// MergeClasses returns attrs with the given class tokens
// merged into its class attribute.
//
// An existing class value keeps its position and quote style;
// tokens already present are not re-added,
// and new tokens are appended in argument order.
// If attrs has no class attribute, a double-quoted one is appended.
// A non-empty result always has exactly one leading space,
// so callers can write "<tag" + result + ">" uniformly.
func MergeClasses(attrs string, classes ...string) string {
	for _, re := range []*regexp.Regexp{_doubleQuotedAny, _singleQuotedAny} {
		loc := re.FindStringSubmatchIndex(attrs)
		if loc == nil {
			continue
		}
		start, end := loc[2], loc[3]
		merged := union(strings.Fields(attrs[start:end]), classes)
		return normalize(attrs[:start] + strings.Join(merged, " ") + attrs[end:])
	}

	added := union(nil, classes)
	if len(added) == 0 {
		return normalize(attrs)
	}
	class := ` class="` + strings.Join(added, " ") + `"`
	if trimmed := strings.TrimSpace(attrs); trimmed != "" {
		return " " + trimmed + class
	}
	return class
}

// union appends to tokens the fields of each class not already present,
// preserving first-occurrence order.
func union(tokens []string, classes []string) []string {
	for _, class := range classes {
		for _, tok := range strings.Fields(class) {
			if !slices.Contains(tokens, tok) {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// normalize reduces a blank attribute string to ""
// and gives any other exactly one leading space.
func normalize(attrs string) string {
	if strings.TrimSpace(attrs) == "" {
		return ""
	}
	return " " + strings.TrimLeft(attrs, " ")
}
