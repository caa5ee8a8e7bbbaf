package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// TypeScriptExtractor extracts functions and class methods from TypeScript.
// The TypeScript grammar shares its relevant node kinds with JavaScript, so
// extraction is delegated to the shared script extractor.
type TypeScriptExtractor struct {
	*scriptExtractor
}

// NewTypeScriptExtractor creates a new TypeScript extractor
func NewTypeScriptExtractor() *TypeScriptExtractor {
	return &TypeScriptExtractor{
		scriptExtractor: &scriptExtractor{
			language: sitter.NewLanguage(typescript.LanguageTypescript()),
			lang:     LanguageTypeScript,
		},
	}
}
