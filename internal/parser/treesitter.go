package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"funcmeta/internal/source"
)

// ParseError reports that a source file is not syntactically valid.
type ParseError struct {
	Path string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid syntax (%s, line %d)", e.Path, e.Line)
}

// parseSource runs tree-sitter over the file and returns the parse tree.
// The caller owns the tree and must Close it.
func parseSource(language *sitter.Language, src *source.File) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(language)

	tree := parser.Parse(src.Content, nil)
	if tree == nil {
		return nil, fmt.Errorf("parsing %s: tree-sitter returned no tree", src.Path)
	}
	return tree, nil
}

// syntaxError converts a tree containing ERROR or MISSING nodes into a
// ParseError anchored at the first such node. Tree-sitter itself is
// error-tolerant, so this is where invalid input gets rejected.
func syntaxError(root *sitter.Node, path string) error {
	if root == nil || !root.HasError() {
		return nil
	}

	line := 1
	found := false
	walkTree(root, func(n *sitter.Node) bool {
		if found {
			return false
		}
		if n.IsError() || n.IsMissing() {
			line = int(n.StartPosition().Row) + 1
			found = true
			return false
		}
		return true
	})
	return &ParseError{Path: path, Line: line}
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor prunes that node's subtree.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// findChildByKind finds the first direct child node with the given kind.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, content []byte) string {
	if node == nil {
		return ""
	}
	return string(content[node.StartByte():node.EndByte()])
}

// nodeStartLine and nodeEndLine convert tree-sitter's 0-based rows to the
// 1-based inclusive line numbers records use.
func nodeStartLine(node *sitter.Node) int {
	return int(node.StartPosition().Row) + 1
}

func nodeEndLine(node *sitter.Node) int {
	return int(node.EndPosition().Row) + 1
}
