package parser

import (
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"funcmeta/internal/source"
)

// scriptExtractor implements extraction shared by the JavaScript and
// TypeScript grammars, which expose the same node kinds for everything
// funcmeta records: root-level function declarations, class methods, and
// functions bound to variables.
type scriptExtractor struct {
	language *sitter.Language
	lang     Language
}

// JavaScriptExtractor extracts functions and class methods from JavaScript.
type JavaScriptExtractor struct {
	*scriptExtractor
}

// NewJavaScriptExtractor creates a new JavaScript extractor
func NewJavaScriptExtractor() *JavaScriptExtractor {
	return &JavaScriptExtractor{
		scriptExtractor: &scriptExtractor{
			language: sitter.NewLanguage(javascript.Language()),
			lang:     LanguageJavaScript,
		},
	}
}

// Language returns the language name
func (s *scriptExtractor) Language() string {
	return string(s.lang)
}

// Extract parses the source and returns records in document order.
func (s *scriptExtractor) Extract(src *source.File) ([]Record, error) {
	tree, err := parseSource(s.language, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if err := syntaxError(root, src.Path); err != nil {
		return nil, err
	}

	imports := collectScriptImports(root, src.Content)
	module := ModuleName(src.Path)

	records := []Record{}
	for i := 0; i < int(root.ChildCount()); i++ {
		records = append(records, s.rootRecords(root.Child(uint(i)), src, imports, module)...)
	}
	return records, nil
}

// rootRecords handles one direct child of the program node. Exported
// declarations are unwrapped so `export function f() {}` is treated like a
// plain declaration.
func (s *scriptExtractor) rootRecords(n *sitter.Node, src *source.File, imports []string, module string) []Record {
	switch n.Kind() {
	case "function_declaration", "generator_function_declaration":
		name := nodeText(n.ChildByFieldName("name"), src.Content)
		return []Record{scriptRecord(n, name, src, imports, module)}
	case "class_declaration":
		return s.classMethods(n, src, imports, module)
	case "lexical_declaration", "variable_declaration":
		return variableFunctions(n, src, imports, module)
	case "export_statement":
		if decl := n.ChildByFieldName("declaration"); decl != nil {
			return s.rootRecords(decl, src, imports, module)
		}
	}
	return nil
}

// classMethods emits one record per method defined directly in the class
// body, named Class.method.
func (s *scriptExtractor) classMethods(class *sitter.Node, src *source.File, imports []string, module string) []Record {
	nameNode := class.ChildByFieldName("name")
	body := class.ChildByFieldName("body")
	if nameNode == nil || body == nil {
		return nil
	}
	className := nodeText(nameNode, src.Content)

	var records []Record
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(uint(i))
		if child.Kind() != "method_definition" {
			continue
		}
		name := className + "." + nodeText(child.ChildByFieldName("name"), src.Content)
		records = append(records, scriptRecord(child, name, src, imports, module))
	}
	return records
}

// variableFunctions handles arrow functions and function expressions bound
// to const/let/var declarators at the root.
func variableFunctions(n *sitter.Node, src *source.File, imports []string, module string) []Record {
	var records []Record
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		if child.Kind() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		value := child.ChildByFieldName("value")
		if nameNode == nil || value == nil {
			continue
		}
		switch value.Kind() {
		case "arrow_function", "function_expression", "function":
			records = append(records, scriptRecord(value, nodeText(nameNode, src.Content), src, imports, module))
		}
	}
	return records
}

func scriptRecord(fn *sitter.Node, name string, src *source.File, imports []string, module string) Record {
	start := nodeStartLine(fn)
	end := nodeEndLine(fn)
	return Record{
		Name:      name,
		Signature: scriptSignature(fn, src.Content),
		Body:      src.Slice(start, end),
		StartLine: start,
		EndLine:   end,
		Imports:   imports,
		Module:    module,
	}
}

// scriptSignature is the declaration text up to the function body.
func scriptSignature(fn *sitter.Node, content []byte) string {
	end := fn.EndByte()
	if body := fn.ChildByFieldName("body"); body != nil {
		end = body.StartByte()
	}
	return strings.TrimRightFunc(string(content[fn.StartByte():end]), unicode.IsSpace)
}

// collectScriptImports renders every import statement at any depth, each
// flattened to a single line.
func collectScriptImports(root *sitter.Node, content []byte) []string {
	imports := []string{}
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "import_statement" {
			return true
		}
		imports = append(imports, strings.Join(strings.Fields(nodeText(n, content)), " "))
		return false
	})
	return imports
}
