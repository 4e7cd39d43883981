// Package highlight renders source code as HTML
// with per-token class annotations.
// It uses the Chroma library to tokenize the source.
//
// Tokens are classified into dotted categories like "keyword.control",
// following the capture-name conventions of editor highlight queries.
// Each dot-separated segment becomes one CSS class on the token's span,
// so a stylesheet can target either "keyword" or "keyword control".
package highlight
