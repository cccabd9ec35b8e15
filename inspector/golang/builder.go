package golang

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/inspector/info"
)

// builder allocates identifiers in visiting order and collects the export set
type builder struct {
	fset     *token.FileSet
	config   *info.Config
	lastID   doctree.NodeID
	exported doctree.NodeSet
}

func newBuilder(fset *token.FileSet, config *info.Config) *builder {
	return &builder{fset: fset, config: config, exported: doctree.NewNodeSet()}
}

func (b *builder) nextID() doctree.DefID {
	b.lastID++
	return doctree.Local(b.lastID)
}

func (b *builder) newItem(name string, exported bool, inner doctree.Inner, doc *ast.CommentGroup) doctree.Item {
	item := doctree.Item{ID: b.nextID(), Name: name, Visibility: visibility(name), Inner: inner, Attrs: docAttrs(doc)}
	if exported {
		b.exported.Add(item.ID.Node)
	}
	return item
}

func (b *builder) newModule(name string) doctree.Item {
	return doctree.Item{ID: b.nextID(), Name: name, Visibility: doctree.Public, Inner: doctree.Module{}}
}

func (b *builder) asCrate(root doctree.Item) *doctree.Item {
	module := root.Inner.(doctree.Module)
	module.IsCrate = true
	root.Inner = module
	return &root
}

func appendItems(module *doctree.Item, items ...doctree.Item) {
	inner := module.Inner.(doctree.Module)
	inner.Items = append(inner.Items, items...)
	module.Inner = inner
}

func visibility(name string) doctree.Visibility {
	if ast.IsExported(name) {
		return doctree.Public
	}
	return doctree.Inherited
}

// pkg tracks declarations of one package across its files
type pkg struct {
	name       string
	exportable bool
	imports    map[string]bool
	types      map[string]doctree.DefID
	impls      []*implGroup
	byReceiver map[string]*implGroup
}

// implGroup collects methods of one receiver type into an inherent impl
type implGroup struct {
	id       doctree.DefID
	receiver string
	methods  []doctree.Item
}

func newPackage(name string, exportable bool) *pkg {
	return &pkg{
		name:       name,
		exportable: exportable,
		imports:    map[string]bool{},
		types:      map[string]doctree.DefID{},
		byReceiver: map[string]*implGroup{},
	}
}

func (p *pkg) isExported(name string) bool {
	return p.exportable && ast.IsExported(name)
}

// addPackage appends package items to the module; impls follow the other items
func (b *builder) addPackage(module *doctree.Item, p *pkg, files ...*ast.File) {
	for _, file := range files {
		module.Attrs = append(module.Attrs, docAttrs(file.Doc)...)
	}
	for _, file := range files {
		appendItems(module, b.imports(p, file)...)
		for _, decl := range file.Decls {
			appendItems(module, b.declaration(p, decl)...)
		}
	}
	for _, group := range p.impls {
		target := doctree.Unresolved(group.receiver)
		if id, ok := p.types[group.receiver]; ok {
			target = doctree.Resolved(group.receiver, id)
		}
		appendItems(module, doctree.Item{
			ID:    group.id,
			Inner: doctree.Impl{For: target, Items: group.methods},
		})
	}
}

func (b *builder) imports(p *pkg, file *ast.File) []doctree.Item {
	var result []doctree.Item
	for _, spec := range file.Imports {
		importPath := strings.Trim(spec.Path.Value, "\"`")
		if p.imports[importPath] {
			continue
		}
		p.imports[importPath] = true
		name := importPath[strings.LastIndex(importPath, "/")+1:]
		if spec.Name != nil {
			name = spec.Name.Name
		}
		item := b.newItem(name, false, doctree.Import{Path: importPath}, spec.Doc)
		item.Visibility = doctree.Inherited
		result = append(result, item)
	}
	return result
}
