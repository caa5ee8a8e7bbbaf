package parser

import (
	"strings"
	"unicode"
)

// SliceSignature reconstructs a declaration header from the 1-based inclusive
// line span of a function node. Lines keep their original terminators, so a
// header whose parameter list wraps across lines comes back with its original
// line breaks. The header ends at the first line whose comment-stripped,
// right-trimmed text ends with a colon; that line contributes its stripped
// form, dropping any trailing comment. If no line in the span qualifies, the
// whole span is used.
func SliceSignature(lines []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}

	var sig strings.Builder
	for i := start - 1; i < end; i++ {
		stripped, terminal := headerEnd(lines[i])
		if terminal {
			sig.WriteString(stripped)
			break
		}
		sig.WriteString(lines[i])
	}
	return strings.TrimRightFunc(sig.String(), unicode.IsSpace)
}

// headerEnd strips a '#'-introduced trailing comment and right-trims the
// line, then reports whether the remainder terminates a declaration header.
func headerEnd(line string) (string, bool) {
	code := line
	if i := strings.IndexByte(code, '#'); i >= 0 {
		code = code[:i]
	}
	code = strings.TrimRightFunc(code, unicode.IsSpace)
	return code, strings.HasSuffix(code, ":")
}
