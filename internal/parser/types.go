package parser

import "funcmeta/internal/source"

// Record is one extracted function or method definition.
type Record struct {
	Name      string   `json:"name"`       // bare name, or Class.method for class-level methods
	Signature string   `json:"signature"`  // declaration header text
	Body      string   `json:"body"`       // verbatim source, start..end lines inclusive
	StartLine int      `json:"start_line"` // 1-based, inclusive
	EndLine   int      `json:"end_line"`   // 1-based, inclusive
	Imports   []string `json:"imports"`    // the whole file's import statements
	Module    string   `json:"module"`     // module name derived from the file path
}

// Extractor defines the interface for language-specific extraction
type Extractor interface {
	// Extract parses a source file and returns one record per function or
	// method, in document order.
	Extract(src *source.File) ([]Record, error)

	// Language returns the language name
	Language() string
}

// Language represents supported programming languages
type Language string

const (
	LanguageGo         Language = "go"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)
