package parser

import "strings"

// ModuleName derives a bare module identifier from a file path: the final
// path segment with its source extension removed. Both separator styles are
// accepted so the result is stable across platforms.
func ModuleName(path string) string {
	trimmed := path
	for _, ext := range SupportedExtensions() {
		if strings.HasSuffix(trimmed, ext) {
			trimmed = strings.TrimSuffix(trimmed, ext)
			break
		}
	}
	normalized := strings.ReplaceAll(trimmed, "\\", "/")
	parts := strings.Split(normalized, "/")
	return parts[len(parts)-1]
}
