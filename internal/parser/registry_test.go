package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filePath string
		expected Language
	}{
		{"main.go", LanguageGo},
		{"script.py", LanguagePython},
		{"app.js", LanguageJavaScript},
		{"component.jsx", LanguageJavaScript},
		{"types.ts", LanguageTypeScript},
		{"component.tsx", LanguageTypeScript},
		{"unknown.txt", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectLanguage(tt.filePath), "path %q", tt.filePath)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	extractor, err := registry.ForLanguage(LanguageGo)
	require.NoError(t, err)
	assert.Equal(t, string(LanguageGo), extractor.Language())

	extractor, err = registry.ForPath("test.py")
	require.NoError(t, err)
	assert.Equal(t, string(LanguagePython), extractor.Language())

	_, err = registry.ForLanguage("unsupported")
	assert.Error(t, err)

	_, err = registry.ForPath("README.md")
	assert.Error(t, err)
}
