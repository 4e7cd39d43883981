// Package entity decodes HTML character references.
//
// Only the references that the rewriter's input can contain are
// recognized: the named references for '<', '>', '&', and '"',
// and decimal or hexadecimal numeric references.
// Anything else passes through as literal text;
// decoding never fails.
package entity

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Decoder is a [transform.Transformer] that decodes HTML character
// references incrementally. It carries no state and may be reused.
var Decoder transform.Transformer = decoder{}

// Decode decodes the HTML character references in s.
// An ampersand that does not begin a well-formed reference
// is kept as-is, and scanning resumes at the following character.
func Decode(s string) string {
	out, _, err := transform.String(Decoder, s)
	if err != nil {
		// decoder never reports an error at EOF.
		return s
	}
	return out
}

// _maxRef bounds the lookahead for a single reference.
// Numeric references longer than this are treated as literal text.
const _maxRef = 32

type decoder struct{}

func (decoder) Reset() {}

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c != '&' {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		decoded, size, status := decodeRef(src[nSrc:])
		if status == refIncomplete {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			status = refInvalid
		}
		if status == refInvalid {
			// Emit the ampersand alone and rescan what follows it.
			decoded, size = "&", 1
		}

		if len(dst)-nDst < len(decoded) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], decoded)
		nSrc += size
	}
	return nDst, nSrc, nil
}

type refStatus int

const (
	refOK refStatus = iota
	refInvalid
	// refIncomplete means src ended before the reference
	// could be classified; more input may complete it.
	refIncomplete
)

var _named = []struct{ ref, text string }{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&quot;", `"`},
}

// decodeRef classifies the reference at the start of src.
// src must begin with '&'.
// On refOK, it returns the decoded text and the encoded length.
func decodeRef(src []byte) (string, int, refStatus) {
	for _, n := range _named {
		if bytes.HasPrefix(src, []byte(n.ref)) {
			return n.text, len(n.ref), refOK
		}
	}
	for _, n := range _named {
		if len(src) < len(n.ref) && bytes.HasPrefix([]byte(n.ref), src) {
			return "", 0, refIncomplete
		}
	}

	if src[1] != '#' {
		return "", 0, refInvalid
	}

	window := src
	if len(window) > _maxRef {
		window = window[:_maxRef]
	}
	end := bytes.IndexByte(window, ';')
	if end < 0 {
		if len(src) < _maxRef {
			return "", 0, refIncomplete
		}
		return "", 0, refInvalid
	}

	digits := src[2:end]
	base := 10
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		digits = digits[1:]
		base = 16
	}
	if len(digits) == 0 {
		return "", 0, refInvalid
	}

	code, err := strconv.ParseUint(string(digits), base, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return "", 0, refInvalid
	}
	return string(rune(code)), end + 1, refOK
}
