// Package undent normalizes the indentation of multi-line string literals.
//
// Writing a multi-line raw string inside an indented block of Go code leaks
// the surrounding indentation into the string's value, and the opening
// backquote forces either an ugly first line or a leading newline. [Reindent]
// removes both artifacts: it strips a purely structural first and last blank
// line and shifts the remaining lines left by their minimum common
// indentation, so literals can be written at the code's natural indent level:
//
//	query := undent.Reindent(`
//	    SELECT id, name
//	    FROM users
//	    WHERE active
//	    `) // -> "SELECT id, name\nFROM users\nWHERE active"
//
// # Rules
//
// Input with no line feed at all is returned unchanged, whatever it
// contains. Otherwise the first line is dropped only when it is exactly
// empty (the conventional "opening marker, then newline" shape); a
// non-empty first line is kept verbatim, and its leading spaces neither
// count toward the common indentation nor get stripped, because text on the
// opening line sits outside any indentation context. The last line is
// dropped when it is empty after removing its leading spaces, since the
// closing marker's line conventionally holds nothing but indentation. Every
// other line is shifted left by the minimum indentation found across the
// lines after the first.
//
// Indentation means consecutive U+0020 space characters only. Tabs,
// carriage returns, and any other whitespace are ordinary content and end
// the leading-space run. Only U+000A separates lines; inputs using CR or
// CRLF line endings keep their carriage returns in the output.
//
// [Reindent] is a pure function with no failure modes and is safe for
// concurrent use.
package undent
