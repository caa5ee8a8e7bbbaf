package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funcmeta/internal/source"
)

func TestJavaScriptExtractor_RootConstructs(t *testing.T) {
	t.Parallel()

	code := `import { readFile } from "fs";

function greet(name) {
  console.log(name);
  return name;
}

const add = (a, b) => {
  return a + b;
};

class Calculator {
  multiply(a, b) {
    return a * b;
  }
}

export function shout(s) {
  return s.toUpperCase();
}
`
	records, err := NewJavaScriptExtractor().Extract(source.New("app.js", []byte(code)))
	require.NoError(t, err)

	require.Len(t, records, 4)

	assert.Equal(t, "greet", records[0].Name)
	assert.Equal(t, "function greet(name)", records[0].Signature)
	assert.Equal(t, 3, records[0].StartLine)
	assert.Equal(t, 6, records[0].EndLine)

	assert.Equal(t, "add", records[1].Name)
	assert.Equal(t, "(a, b) =>", records[1].Signature)
	assert.Equal(t, 8, records[1].StartLine)
	assert.Equal(t, 10, records[1].EndLine)

	assert.Equal(t, "Calculator.multiply", records[2].Name)
	assert.Equal(t, "multiply(a, b)", records[2].Signature)
	assert.Equal(t, 13, records[2].StartLine)
	assert.Equal(t, 15, records[2].EndLine)

	assert.Equal(t, "shout", records[3].Name)
	assert.Equal(t, "function shout(s)", records[3].Signature)
	assert.Equal(t, 18, records[3].StartLine)

	for _, r := range records {
		assert.Equal(t, []string{`import { readFile } from "fs";`}, r.Imports)
		assert.Equal(t, "app", r.Module)
	}
}

func TestJavaScriptExtractor_NestedFunctionsSkipped(t *testing.T) {
	t.Parallel()

	code := `function outer() {
  function inner() {
    return 1;
  }
  return inner;
}
`
	records, err := NewJavaScriptExtractor().Extract(source.New("nest.js", []byte(code)))
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "outer", records[0].Name)
	assert.NotNil(t, records[0].Imports)
	assert.Empty(t, records[0].Imports)
}
