package golang

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"

	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/inspector/info"
	"github.com/viant/docfold/inspector/repository"
)

// Inspector builds documentation trees from Go sources
type Inspector struct {
	fset     *token.FileSet
	config   *info.Config
	detector *repository.Detector
}

// Inspection holds an inspected crate with its externally visible identifiers
type Inspection struct {
	Crate    doctree.Crate
	Exported doctree.NodeSet
	Project  *repository.Project
}

// NewInspector creates a new Inspector with the provided configuration
func NewInspector(config *info.Config) *Inspector {
	if config == nil {
		config = info.DefaultConfig()
	}
	return &Inspector{
		fset:     token.NewFileSet(),
		config:   config,
		detector: repository.New(),
	}
}

const defaultFilename = "source.go"

// InspectSource parses a single Go file into a crate named after its package
func (i *Inspector) InspectSource(src []byte) (*Inspection, error) {
	file, err := parser.ParseFile(i.fset, defaultFilename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	b := newBuilder(i.fset, i.config)
	root := b.newModule(file.Name.Name)
	b.addPackage(&root, newPackage(file.Name.Name, true), file)
	crate := doctree.Crate{Name: file.Name.Name, Module: b.asCrate(root)}
	return &Inspection{Crate: crate, Exported: b.exported}, nil
}

// InspectProject parses every package under location; nested packages become nested modules
func (i *Inspector) InspectProject(ctx context.Context, location string) (*Inspection, error) {
	project, err := i.detector.DetectProject(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project %v: %w", location, err)
	}
	dir := filepath.Join(project.RootPath, filepath.FromSlash(project.RelativePath))
	name := project.ImportPath(project.RelativePath)

	b := newBuilder(i.fset, i.config)
	root, _, err := i.inspectDir(ctx, b, dir, name, name)
	if err != nil {
		return nil, err
	}
	crate := doctree.Crate{Name: name, Module: b.asCrate(root)}
	return &Inspection{Crate: crate, Exported: b.exported, Project: project}, nil
}
