package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funcmeta/internal/parser"
	"funcmeta/internal/source"
)

func TestJSONTo_EmptyRecordSet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSONTo(&buf, []parser.Record{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONTo_RecordKeysAndIndent(t *testing.T) {
	t.Parallel()

	records := []parser.Record{{
		Name:      "f",
		Signature: "def f():",
		Body:      "def f():\n    pass\n",
		StartLine: 1,
		EndLine:   2,
		Imports:   []string{"import os"},
		Module:    "m",
	}}

	var buf bytes.Buffer
	require.NoError(t, JSONTo(&buf, records))

	out := buf.String()
	assert.Contains(t, out, "  {\n")
	assert.Contains(t, out, `"name": "f"`)
	assert.Contains(t, out, `"signature": "def f():"`)
	assert.Contains(t, out, `"start_line": 1`)
	assert.Contains(t, out, `"end_line": 2`)
	assert.Contains(t, out, `"module": "m"`)
}

func TestJSONTo_ImportFreeFileEmitsEmptyArray(t *testing.T) {
	t.Parallel()

	records, err := parser.NewPythonExtractor().Extract(source.New("plain.py", []byte("def f():\n    pass\n")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSONTo(&buf, records))

	out := buf.String()
	assert.Contains(t, out, `"imports": []`)
	assert.NotContains(t, out, `"imports": null`)
}

func TestJSONErrorTo_SingleLineObject(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSONErrorTo(&buf, errors.New("invalid syntax (x.py, line 3)")))
	assert.Equal(t, "{\"error\":\"invalid syntax (x.py, line 3)\"}\n", buf.String())
}
