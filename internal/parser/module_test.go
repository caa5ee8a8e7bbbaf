package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"widget.py", "widget"},
		{"a/b/widget.py", "widget"},
		{`a\b\widget.py`, "widget"},
		{"a/b\\widget.py", "widget"},
		{"cmd/root.go", "root"},
		{"src/app.tsx", "app"},
		{"lib/util.mjs", "util"},
		{"script", "script"},
		{"notes.txt", "notes.txt"},
		{"dir.name/mod.py", "mod"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ModuleName(tt.path), "path %q", tt.path)
	}
}
