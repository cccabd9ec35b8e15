package golang

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/docfold/doctree"
)

// inspectDir builds the module of a directory; ok is false when neither the
// directory nor its descendants hold a package
func (i *Inspector) inspectDir(ctx context.Context, b *builder, dir, name, importPath string) (doctree.Item, bool, error) {
	if err := ctx.Err(); err != nil {
		return doctree.Item{}, false, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return doctree.Item{}, false, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	module := b.newModule(name)

	files, err := i.parsePackage(dir, entries)
	if err != nil {
		return module, false, err
	}
	ok := len(files) > 0
	if ok {
		packageName := files[0].Name.Name
		b.addPackage(&module, newPackage(packageName, isExportable(importPath, packageName)), files...)
	}

	for _, entry := range entries {
		if !entry.IsDir() || skipDir(entry.Name()) {
			continue
		}
		childDir := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(filepath.Join(childDir, "go.mod")); err == nil {
			continue // nested module
		}
		child, childOk, err := i.inspectDir(ctx, b, childDir, entry.Name(), path.Join(importPath, entry.Name()))
		if err != nil {
			return module, false, err
		}
		if childOk {
			appendItems(&module, child)
			ok = true
		}
	}
	return module, ok, nil
}

// parsePackage parses the Go files of a directory in name order, keeping the first package found
func (i *Inspector) parsePackage(dir string, entries []os.DirEntry) ([]*ast.File, error) {
	var files []*ast.File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isSourceFile(name, i.config.SkipTests) {
			continue
		}
		filename := filepath.Join(dir, name)
		file, err := parser.ParseFile(i.fset, filename, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
		}
		if strings.HasSuffix(file.Name.Name, "_test") {
			continue // external test package
		}
		if len(files) > 0 && files[0].Name.Name != file.Name.Name {
			continue
		}
		files = append(files, file)
	}
	return files, nil
}

func isSourceFile(name string, skipTests bool) bool {
	if filepath.Ext(name) != ".go" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	return !skipTests || !strings.HasSuffix(name, "_test.go")
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata" || name == "vendor"
}

// isExportable reports whether identifiers of the package can be used by other modules
func isExportable(importPath, packageName string) bool {
	if packageName == "main" {
		return false
	}
	for _, segment := range strings.Split(importPath, "/") {
		if segment == "internal" {
			return false
		}
	}
	return true
}
