package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Registry maps languages to their extractors
type Registry struct {
	extractors map[Language]Extractor
}

// NewRegistry creates a registry with all supported languages
func NewRegistry() *Registry {
	return &Registry{
		extractors: map[Language]Extractor{
			LanguageGo:         NewGoExtractor(),
			LanguagePython:     NewPythonExtractor(),
			LanguageJavaScript: NewJavaScriptExtractor(),
			LanguageTypeScript: NewTypeScriptExtractor(),
		},
	}
}

// ForLanguage returns the extractor for the given language
func (r *Registry) ForLanguage(lang Language) (Extractor, error) {
	extractor, exists := r.extractors[lang]
	if !exists {
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	return extractor, nil
}

// ForPath returns an extractor based on file extension
func (r *Registry) ForPath(filePath string) (Extractor, error) {
	lang := DetectLanguage(filePath)
	if lang == "" {
		return nil, fmt.Errorf("unsupported file type: %s", filePath)
	}
	return r.ForLanguage(lang)
}

// DetectLanguage detects the programming language based on file extension
func DetectLanguage(filePath string) Language {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".go":
		return LanguageGo
	case ".py":
		return LanguagePython
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	case ".ts", ".tsx":
		return LanguageTypeScript
	default:
		return ""
	}
}

// SupportedExtensions returns all supported file extensions
func SupportedExtensions() []string {
	return []string{
		".go",
		".py",
		".js", ".jsx", ".mjs", ".cjs",
		".ts", ".tsx",
	}
}
