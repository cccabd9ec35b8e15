package golang

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/viant/docfold/doctree"
)

func (b *builder) declaration(p *pkg, decl ast.Decl) []doctree.Item {
	switch actual := decl.(type) {
	case *ast.FuncDecl:
		return b.function(p, actual)
	case *ast.GenDecl:
		var result []doctree.Item
		for _, spec := range actual.Specs {
			switch spec := spec.(type) {
			case *ast.TypeSpec:
				if item, ok := b.typeSpec(p, spec, firstDoc(spec.Doc, actual.Doc)); ok {
					result = append(result, item)
				}
			case *ast.ValueSpec:
				result = append(result, b.valueSpec(p, spec, actual.Tok, firstDoc(spec.Doc, actual.Doc))...)
			}
		}
		return result
	}
	return nil
}

func (b *builder) include(name string) bool {
	return name != "_" && (b.config.IncludeUnexported || ast.IsExported(name))
}

func (b *builder) typeSpec(p *pkg, spec *ast.TypeSpec, doc *ast.CommentGroup) (doctree.Item, bool) {
	name := spec.Name.Name
	if !b.include(name) {
		return doctree.Item{}, false
	}
	exported := p.isExported(name)
	var item doctree.Item
	switch actual := spec.Type.(type) {
	case *ast.StructType:
		item = b.newItem(name, exported, doctree.Struct{}, doc)
		item.Inner = doctree.Struct{Fields: b.fields(actual.Fields, exported)}
	case *ast.InterfaceType:
		item = b.newItem(name, exported, doctree.Trait{}, doc)
		item.Inner = doctree.Trait{Items: b.interfaceMethods(actual.Methods, exported)}
	default:
		item = b.newItem(name, exported, doctree.Typedef{Type: doctree.Unresolved(b.render(spec.Type))}, doc)
	}
	p.types[name] = item.ID
	return item, true
}

func (b *builder) fields(list *ast.FieldList, parentExported bool) []doctree.Item {
	var result []doctree.Item
	if list == nil {
		return nil
	}
	for _, field := range list.List {
		fieldType := doctree.Unresolved(b.render(field.Type))
		names := identNames(field.Names)
		if len(names) == 0 {
			names = []string{baseTypeName(field.Type)}
		}
		for _, name := range names {
			result = append(result, b.newItem(name, parentExported && ast.IsExported(name), doctree.StructField{Type: fieldType}, field.Doc))
		}
	}
	return result
}

func (b *builder) interfaceMethods(list *ast.FieldList, parentExported bool) []doctree.Item {
	var result []doctree.Item
	if list == nil {
		return nil
	}
	for _, field := range list.List {
		funcType, ok := field.Type.(*ast.FuncType)
		if !ok {
			continue // embedded interface or type constraint
		}
		for _, name := range identNames(field.Names) {
			signature := name + strings.TrimPrefix(b.render(funcType), "func")
			item := b.newItem(name, parentExported && ast.IsExported(name), doctree.TyMethod{Signature: signature}, field.Doc)
			item.Visibility = doctree.VisibilityUnspecified
			result = append(result, item)
		}
	}
	return result
}

func (b *builder) valueSpec(p *pkg, spec *ast.ValueSpec, tok token.Token, doc *ast.CommentGroup) []doctree.Item {
	var result []doctree.Item
	valueType := doctree.Unresolved("")
	if spec.Type != nil {
		valueType = doctree.Unresolved(b.render(spec.Type))
	}
	for i, ident := range spec.Names {
		if !b.include(ident.Name) {
			continue
		}
		expr := ""
		if i < len(spec.Values) {
			expr = b.render(spec.Values[i])
		}
		var inner doctree.Inner = doctree.Static{Type: valueType, Expr: expr}
		if tok == token.CONST {
			inner = doctree.Constant{Type: valueType, Expr: expr}
		}
		result = append(result, b.newItem(ident.Name, p.isExported(ident.Name), inner, doc))
	}
	return result
}

// function returns free functions; methods are collected into their receiver's impl
func (b *builder) function(p *pkg, decl *ast.FuncDecl) []doctree.Item {
	name := decl.Name.Name
	if !b.include(name) {
		return nil
	}
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		if name == "init" {
			return nil
		}
		return []doctree.Item{b.newItem(name, p.isExported(name), doctree.Function{Signature: b.signature(decl)}, decl.Doc)}
	}

	receiver := baseTypeName(decl.Recv.List[0].Type)
	group, ok := p.byReceiver[receiver]
	if !ok {
		group = &implGroup{id: b.nextID(), receiver: receiver}
		p.byReceiver[receiver] = group
		p.impls = append(p.impls, group)
	}
	exported := p.isExported(name) && ast.IsExported(receiver)
	group.methods = append(group.methods, b.newItem(name, exported, doctree.Method{Signature: b.signature(decl)}, decl.Doc))
	return nil
}

func (b *builder) signature(decl *ast.FuncDecl) string {
	header := *decl
	header.Doc, header.Body = nil, nil
	return b.render(&header)
}

func firstDoc(docs ...*ast.CommentGroup) *ast.CommentGroup {
	for _, doc := range docs {
		if doc != nil {
			return doc
		}
	}
	return nil
}

func identNames(idents []*ast.Ident) []string {
	result := make([]string, 0, len(idents))
	for _, ident := range idents {
		result = append(result, ident.Name)
	}
	return result
}
