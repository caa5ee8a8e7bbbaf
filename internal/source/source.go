package source

import (
	"fmt"
	"os"
	"strings"
)

// File holds one loaded source file: the raw bytes plus a line-indexed view.
// Lines keep their original terminators so that joining a span reproduces the
// file's bytes exactly. A File is not modified after Load.
type File struct {
	Path    string
	Content []byte
	Lines   []string
}

// Load reads the file at path and builds its line index.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return New(path, content), nil
}

// New builds a File from in-memory content.
func New(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		Lines:   splitLines(string(content)),
	}
}

// Slice returns the verbatim text of lines start..end (1-based, inclusive),
// terminators included.
func (f *File) Slice(start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(f.Lines) {
		end = len(f.Lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(f.Lines[start-1:end], "")
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
