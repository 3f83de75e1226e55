package undent

import "strings"

// unindented is a line decomposed into its leading-space count and the text
// after those spaces.
type unindented struct {
	rest  string
	level int
}

// splitIndent decomposes a line into its unindented form. Only U+0020 counts
// as indentation; any other byte ends the run.
func splitIndent(line string) unindented {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}

	return unindented{
		rest:  line[i:],
		level: i,
	}
}

// Reindent normalizes the indentation of a multi-line string literal.
//
// The first line is dropped if it is exactly empty, and the last line is
// dropped if it is empty after removing its leading spaces. Every remaining
// line after the first is shifted left by the minimum leading-space count
// found across the lines after the first. A non-empty first line is kept
// verbatim. Input without a line feed is returned unchanged.
//
// See the package documentation for the full rules.
func Reindent(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) == 1 {
		// No separator to normalize: single-line literals (including the
		// empty string) pass through untouched.
		return s
	}

	first := lines[0]
	body := lines[1:] // Non-empty: len(lines) > 1.

	rest := make([]unindented, len(body))
	for i, line := range body {
		rest[i] = splitIndent(line)
	}

	// The minimum is taken over every line after the first, including a
	// trailing whitespace-only line that gets dropped below.
	minLevel := rest[0].level
	for _, u := range rest[1:] {
		if u.level < minLevel {
			minLevel = u.level
		}
	}

	// A last line that is nothing but indentation only existed to put the
	// closing marker on its own line.
	if rest[len(rest)-1].rest == "" {
		rest = rest[:len(rest)-1]
	}

	var sb strings.Builder
	sb.Grow(len(s))

	// An exactly empty first line is the "marker, then newline" artifact.
	// Anything else on the opening line, even a lone space, is content.
	keepFirst := first != ""
	if keepFirst {
		sb.WriteString(first)
	}

	for i, u := range rest {
		if i > 0 || keepFirst {
			sb.WriteByte('\n')
		}

		// Never negative: minLevel is a true minimum over these lines.
		sb.WriteString(strings.Repeat(" ", u.level-minLevel))
		sb.WriteString(u.rest)
	}

	return sb.String()
}
