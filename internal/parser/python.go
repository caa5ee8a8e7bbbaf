package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"funcmeta/internal/source"
)

// PythonExtractor extracts module-level functions and class-level methods
// from Python source. Two traversals run over the same tree: imports are
// collected from every depth, while function records come only from direct
// children of the module (and the direct children of module-level classes).
// Functions nested inside functions, and classes nested inside classes, are
// never visited.
type PythonExtractor struct {
	language *sitter.Language
}

// NewPythonExtractor creates a new Python extractor
func NewPythonExtractor() *PythonExtractor {
	return &PythonExtractor{language: sitter.NewLanguage(python.Language())}
}

// Language returns the language name
func (p *PythonExtractor) Language() string {
	return string(LanguagePython)
}

// Extract parses Python source and returns records in document order.
func (p *PythonExtractor) Extract(src *source.File) ([]Record, error) {
	tree, err := parseSource(p.language, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if err := syntaxError(root, src.Path); err != nil {
		return nil, err
	}

	imports := collectPythonImports(root, src.Content)
	module := ModuleName(src.Path)

	records := []Record{}
	for i := 0; i < int(root.ChildCount()); i++ {
		child := definitionNode(root.Child(uint(i)))
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "function_definition":
			records = append(records, pythonRecord(child, src, imports, module, ""))
		case "class_definition":
			records = append(records, pythonClassMethods(child, src, imports, module)...)
		}
	}
	return records, nil
}

// definitionNode resolves a decorated_definition to the definition it wraps,
// so records anchor at the def line rather than the decorator.
func definitionNode(node *sitter.Node) *sitter.Node {
	if node != nil && node.Kind() == "decorated_definition" {
		if def := node.ChildByFieldName("definition"); def != nil {
			return def
		}
	}
	return node
}

// pythonClassMethods emits one record per function defined directly in the
// class body, with the method name qualified by the class name.
func pythonClassMethods(class *sitter.Node, src *source.File, imports []string, module string) []Record {
	nameNode := class.ChildByFieldName("name")
	body := class.ChildByFieldName("body")
	if nameNode == nil || body == nil {
		return nil
	}
	className := nodeText(nameNode, src.Content)

	var records []Record
	for i := 0; i < int(body.ChildCount()); i++ {
		child := definitionNode(body.Child(uint(i)))
		if child == nil || child.Kind() != "function_definition" {
			continue
		}
		records = append(records, pythonRecord(child, src, imports, module, className))
	}
	return records
}

func pythonRecord(fn *sitter.Node, src *source.File, imports []string, module, className string) Record {
	name := nodeText(fn.ChildByFieldName("name"), src.Content)
	if className != "" {
		name = className + "." + name
	}

	start := nodeStartLine(fn)
	end := nodeEndLine(fn)
	return Record{
		Name:      name,
		Signature: SliceSignature(src.Lines, start, end),
		Body:      src.Slice(start, end),
		StartLine: start,
		EndLine:   end,
		Imports:   imports,
		Module:    module,
	}
}

// collectPythonImports renders every import statement in the file, at any
// nesting depth, in document order. Plain imports emit one line per imported
// name; from-imports join their names into a single line.
func collectPythonImports(root *sitter.Node, content []byte) []string {
	imports := []string{}
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "import_statement":
			imports = append(imports, renderPythonImport(n, content)...)
			return false
		case "import_from_statement", "future_import_statement":
			imports = append(imports, renderPythonFromImport(n, content))
			return false
		}
		return true
	})
	return imports
}

// renderPythonImport renders "import a.b" or "import a.b as c", one line per
// name for multi-name statements like "import os, sys".
func renderPythonImport(n *sitter.Node, content []byte) []string {
	var lines []string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		switch child.Kind() {
		case "dotted_name":
			lines = append(lines, "import "+nodeText(child, content))
		case "aliased_import":
			name, alias := aliasedImportParts(child, content)
			lines = append(lines, "import "+name+" as "+alias)
		}
	}
	return lines
}

// renderPythonFromImport renders one from-import as a single line. The module
// portion carries no relative-import dots, and a bare relative import renders
// an empty module, giving the literal "from  import x" (double space) that
// downstream consumers already rely on.
func renderPythonFromImport(n *sitter.Node, content []byte) string {
	var module string
	var names []string
	sawImport := false

	if n.Kind() == "future_import_statement" {
		module = "__future__"
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		switch child.Kind() {
		case "import":
			sawImport = true
		case "relative_import":
			if dotted := findChildByKind(child, "dotted_name"); dotted != nil {
				module = nodeText(dotted, content)
			}
		case "dotted_name":
			if sawImport {
				names = append(names, nodeText(child, content))
			} else {
				module = nodeText(child, content)
			}
		case "aliased_import":
			name, alias := aliasedImportParts(child, content)
			names = append(names, name+" as "+alias)
		case "wildcard_import":
			names = append(names, "*")
		}
	}
	return "from " + module + " import " + strings.Join(names, ", ")
}

func aliasedImportParts(n *sitter.Node, content []byte) (string, string) {
	name := nodeText(n.ChildByFieldName("name"), content)
	alias := nodeText(n.ChildByFieldName("alias"), content)
	return name, alias
}
