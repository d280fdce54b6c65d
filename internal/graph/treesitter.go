package graph

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// TreeSitterParser implements the Parser interface using the tree-sitter
// Python grammar. A new tree-sitter parser is created per Parse call, so this
// type is safe for sequential use but individual Parse calls are not
// thread-safe.
type TreeSitterParser struct {
	lang *tree_sitter.Language
}

// Compile-time assertion: *TreeSitterParser satisfies Parser.
var _ Parser = (*TreeSitterParser)(nil)

// NewTreeSitterParser creates a TreeSitterParser with the Python grammar
// registered.
func NewTreeSitterParser() *TreeSitterParser {
	return &TreeSitterParser{
		lang: tree_sitter.NewLanguage(tree_sitter_python.Language()),
	}
}

// Parse extracts declared functions, classes, and import references from a
// single Python source file. Extraction is pure with respect to its input;
// the returned Inventory is complete or the error is one of the typed
// per-file failures.
func (p *TreeSitterParser) Parse(_ context.Context, path string, source []byte) (*Inventory, error) {
	if !utf8.Valid(source) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnreadable)
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.lang); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnparseable)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s: %w", path, ErrUnparseable)
	}

	inv := &Inventory{
		Path:   path,
		LOC:    countLOC(source),
		Source: string(source),
	}

	cursor := root.Walk()
	defer cursor.Close()
	walkPython(cursor, source, inv)

	return inv, nil
}

// Close is a no-op because parsers are created per Parse call.
func (p *TreeSitterParser) Close() error {
	return nil
}

// walkPython visits every node in document order, collecting declarations at
// any nesting depth (methods and closures included, like ast.walk would).
func walkPython(cursor *tree_sitter.TreeCursor, source []byte, inv *Inventory) {
	node := cursor.Node()

	switch node.Kind() {
	case "function_definition":
		if name := fieldText(node, "name", source); name != "" {
			inv.Functions = append(inv.Functions, name)
		}

	case "class_definition":
		if name := fieldText(node, "name", source); name != "" {
			inv.Classes = append(inv.Classes, name)
		}

	case "import_statement":
		inv.Imports = append(inv.Imports, importedModules(node, source)...)

	case "import_from_statement":
		inv.Imports = append(inv.Imports, fromImportRefs(node, source)...)
	}

	if cursor.GotoFirstChild() {
		walkPython(cursor, source, inv)
		for cursor.GotoNextSibling() {
			walkPython(cursor, source, inv)
		}
		cursor.GotoParent()
	}
}

// importedModules handles "import a.b, c": each name in the list becomes its
// own reference. Aliased forms ("import a.b as x") record the module, not the
// alias.
func importedModules(node *tree_sitter.Node, source []byte) []string {
	var refs []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "dotted_name":
			if ref := child.Utf8Text(source); ref != "" {
				refs = append(refs, ref)
			}
		case "aliased_import":
			if ref := fieldText(child, "name", source); ref != "" {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// fromImportRefs handles "from m import a, b": each imported name is folded
// into the module reference, producing "m.a" and "m.b". Relative modules keep
// their leading dots as written, so "from . import x" yields ".x" and
// "from ..pkg import y" yields "..pkg.y".
func fromImportRefs(node *tree_sitter.Node, source []byte) []string {
	module := fieldText(node, "module_name", source)
	if module == "" {
		return nil
	}

	var names []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "dotted_name":
			// The module_name field is itself a dotted_name for absolute
			// imports; skip it so only imported symbols remain.
			if mn := node.ChildByFieldName("module_name"); mn != nil && child.StartByte() == mn.StartByte() {
				continue
			}
			if n := child.Utf8Text(source); n != "" {
				names = append(names, n)
			}
		case "aliased_import":
			if n := fieldText(child, "name", source); n != "" {
				names = append(names, n)
			}
		case "wildcard_import":
			names = append(names, "*")
		}
	}

	refs := make([]string, 0, len(names))
	for _, n := range names {
		refs = append(refs, joinModuleRef(module, n))
	}
	return refs
}

// joinModuleRef folds an imported symbol into its module reference. A module
// that is only dots ("from . import x") concatenates directly so the result
// stays a well-formed relative reference (".x", not "..x").
func joinModuleRef(module, name string) string {
	if strings.HasSuffix(module, ".") {
		return module + name
	}
	return module + "." + name
}

// fieldText returns the source text of a named child field, or "".
func fieldText(node *tree_sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Utf8Text(source)
}

// countLOC counts the number of lines in source by counting newline bytes
// and adding one for the final line if the source is non-empty.
func countLOC(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	return bytes.Count(source, []byte{'\n'}) + 1
}
