package parser

import (
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"funcmeta/internal/source"
)

// GoExtractor extracts top-level functions and methods from Go source.
// Method names are qualified with their receiver type, e.g.
// "(*Calculator).Multiply". Go has no class nesting, so the root walk alone
// covers everything; function literals inside bodies are not extracted.
type GoExtractor struct {
	language *sitter.Language
}

// NewGoExtractor creates a new Go extractor
func NewGoExtractor() *GoExtractor {
	return &GoExtractor{language: sitter.NewLanguage(golang.Language())}
}

// Language returns the language name
func (g *GoExtractor) Language() string {
	return string(LanguageGo)
}

// Extract parses Go source and returns records in document order.
func (g *GoExtractor) Extract(src *source.File) ([]Record, error) {
	tree, err := parseSource(g.language, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if err := syntaxError(root, src.Path); err != nil {
		return nil, err
	}

	imports := collectGoImports(root, src.Content)
	module := ModuleName(src.Path)

	records := []Record{}
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(uint(i))
		switch child.Kind() {
		case "function_declaration":
			records = append(records, goRecord(child, src, imports, module, ""))
		case "method_declaration":
			records = append(records, goRecord(child, src, imports, module, receiverType(child, src.Content)))
		}
	}
	return records, nil
}

func goRecord(fn *sitter.Node, src *source.File, imports []string, module, receiver string) Record {
	name := nodeText(fn.ChildByFieldName("name"), src.Content)
	if receiver != "" {
		name = "(" + receiver + ")." + name
	}

	start := nodeStartLine(fn)
	end := nodeEndLine(fn)
	return Record{
		Name:      name,
		Signature: goSignature(fn, src.Content),
		Body:      src.Slice(start, end),
		StartLine: start,
		EndLine:   end,
		Imports:   imports,
		Module:    module,
	}
}

// goSignature is the declaration text from the func keyword up to the body.
func goSignature(fn *sitter.Node, content []byte) string {
	end := fn.EndByte()
	if body := fn.ChildByFieldName("body"); body != nil {
		end = body.StartByte()
	}
	return strings.TrimRightFunc(string(content[fn.StartByte():end]), unicode.IsSpace)
}

// receiverType returns the receiver's type text for a method declaration.
func receiverType(fn *sitter.Node, content []byte) string {
	recv := fn.ChildByFieldName("receiver")
	if recv == nil {
		return ""
	}
	decl := findChildByKind(recv, "parameter_declaration")
	if decl == nil {
		return ""
	}
	return nodeText(decl.ChildByFieldName("type"), content)
}

// collectGoImports renders every import spec in document order: `"fmt"` for
// plain imports, `alias "pkg/path"` for named ones.
func collectGoImports(root *sitter.Node, content []byte) []string {
	imports := []string{}
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "import_spec" {
			return true
		}
		path := nodeText(n.ChildByFieldName("path"), content)
		if name := n.ChildByFieldName("name"); name != nil {
			imports = append(imports, nodeText(name, content)+" "+path)
		} else {
			imports = append(imports, path)
		}
		return false
	})
	return imports
}
