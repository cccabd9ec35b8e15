package golang

import (
	"bytes"
	"go/ast"
	"go/printer"
	"strings"

	"github.com/viant/docfold/doctree"
)

// HiddenDirective marks a declaration hidden from documentation
const HiddenDirective = "docfold:hidden"

// render prints a node in canonical Go syntax
func (b *builder) render(node any) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, b.fset, node); err != nil {
		return ""
	}
	return buf.String()
}

// baseTypeName returns the named type behind pointers and type arguments
func baseTypeName(expr ast.Expr) string {
	switch actual := expr.(type) {
	case *ast.Ident:
		return actual.Name
	case *ast.StarExpr:
		return baseTypeName(actual.X)
	case *ast.ParenExpr:
		return baseTypeName(actual.X)
	case *ast.IndexExpr:
		return baseTypeName(actual.X)
	case *ast.IndexListExpr:
		return baseTypeName(actual.X)
	case *ast.SelectorExpr:
		return actual.Sel.Name
	}
	return ""
}

// docAttrs converts a comment group into documentation fragments, one per line comment.
// Compiler directives are dropped; the hidden directive becomes doc(hidden).
func docAttrs(group *ast.CommentGroup) []doctree.Attribute {
	if group == nil {
		return nil
	}
	var result []doctree.Attribute
	hidden := false
	for _, comment := range group.List {
		text := comment.Text
		if strings.HasPrefix(text, "/*") {
			result = append(result, doctree.Doc(strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")))
			continue
		}
		line := strings.TrimPrefix(text, "//")
		switch {
		case line == HiddenDirective:
			hidden = true
		case isDirective(line):
		default:
			result = append(result, doctree.Doc(line))
		}
	}
	for len(result) > 0 && strings.TrimSpace(result[len(result)-1].Value) == "" {
		result = result[:len(result)-1]
	}
	if hidden {
		result = append(result, doctree.Hidden())
	}
	return result
}

// isDirective reports comment lines such as "go:generate" or "nolint:all"
func isDirective(line string) bool {
	if strings.HasPrefix(line, "line ") || strings.HasPrefix(line, "extern ") || strings.HasPrefix(line, "export ") {
		return true
	}
	colon := strings.Index(line, ":")
	if colon <= 0 || colon+1 >= len(line) {
		return false
	}
	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}
		c := line[i]
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
