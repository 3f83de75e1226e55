// Package stringtest builds multi-line strings with explicit line endings
// and indentation, primarily for constructing test fixtures and expected
// output around [go.jacobcolvin.com/undent.Reindent].
package stringtest

import "strings"

// JoinLF joins strings with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins strings with CRLF line endings, for expectations involving
// Windows-style input.
//
// Example:
//
//	want := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//	) // -> "line1\r\nline2"
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Indent returns a copy of ss with each string prefixed by n spaces.
// Combine with [JoinLF] to build indented fixture blocks:
//
//	input := stringtest.JoinLF(stringtest.Indent(4,
//		"line1",
//		"line2",
//	)...) // -> "    line1\n    line2"
//
// Empty strings are indented like any other; n must not be negative.
func Indent(n int, ss ...string) []string {
	prefix := strings.Repeat(" ", n)

	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = prefix + s
	}

	return out
}
