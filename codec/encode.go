package codec

import (
	"fmt"
	"slices"

	"github.com/viant/docfold/doctree"
)

// NewDocument converts a crate and its export set into wire form
func NewDocument(crate doctree.Crate, exported doctree.NodeSet) (*Document, error) {
	doc := &Document{Crate: crateNode{Name: crate.Name}}
	if crate.Module != nil {
		module, err := encodeItem(*crate.Module)
		if err != nil {
			return nil, err
		}
		doc.Crate.Module = &module
	}
	for _, id := range crate.ExternalTraitIDs() {
		items, err := encodeItems(crate.ExternalTraits[id].Items)
		if err != nil {
			return nil, err
		}
		doc.Crate.ExternalTraits = append(doc.Crate.ExternalTraits, externalTrait{ID: encodeID(id), Items: items})
	}
	if exported.Len() > 0 {
		doc.Exported = exported.Values()
		slices.Sort(doc.Exported)
	}
	return doc, nil
}

func encodeID(id doctree.DefID) idNode {
	return idNode{Crate: uint32(id.Crate), Node: uint32(id.Node)}
}

func encodeType(t doctree.Type) *typeNode {
	result := &typeNode{Path: t.Path}
	if id, ok := t.Resolution(); ok {
		node := encodeID(id)
		result.ID = &node
	}
	return result
}

func encodeTypes(types []doctree.Type) []typeNode {
	if len(types) == 0 {
		return nil
	}
	result := make([]typeNode, len(types))
	for i, t := range types {
		result[i] = *encodeType(t)
	}
	return result
}

func encodeAttrs(attrs []doctree.Attribute) []attrNode {
	if len(attrs) == 0 {
		return nil
	}
	result := make([]attrNode, len(attrs))
	for i, attr := range attrs {
		result[i] = attrNode{
			Kind:  attrKinds[attr.Kind],
			Name:  attr.Name,
			Value: attr.Value,
			List:  encodeAttrs(attr.List),
		}
	}
	return result
}

func encodeItems(items []doctree.Item) ([]itemNode, error) {
	if len(items) == 0 {
		return nil, nil
	}
	result := make([]itemNode, len(items))
	for i, item := range items {
		node, err := encodeItem(item)
		if err != nil {
			return nil, err
		}
		result[i] = node
	}
	return result, nil
}

func encodeItem(item doctree.Item) (itemNode, error) {
	node := itemNode{
		ID:    encodeID(item.ID),
		Name:  item.Name,
		Attrs: encodeAttrs(item.Attrs),
		Kind:  string(item.Kind()),
	}
	if item.Visibility != doctree.VisibilityUnspecified {
		node.Visibility = item.Visibility.String()
	}
	var err error
	switch inner := item.Inner.(type) {
	case doctree.Module:
		node.IsCrate = inner.IsCrate
		node.Items, err = encodeItems(inner.Items)
	case doctree.Struct:
		node.FieldsStripped = inner.FieldsStripped
		node.Fields, err = encodeItems(inner.Fields)
	case doctree.StructField:
		node.Hidden = inner.Hidden
		if !inner.Hidden {
			node.Type = encodeType(inner.Type)
		}
	case doctree.Enum:
		node.VariantsStripped = inner.VariantsStripped
		node.Variants, err = encodeItems(inner.Variants)
	case doctree.Variant:
		node.VariantKind = variantKinds[inner.Shape]
		node.Types = encodeTypes(inner.Types)
		node.FieldsStripped = inner.FieldsStripped
		node.Fields, err = encodeItems(inner.Fields)
	case doctree.Trait:
		node.Items, err = encodeItems(inner.Items)
	case doctree.TyMethod:
		node.Signature = inner.Signature
	case doctree.Method:
		node.Signature = inner.Signature
	case doctree.Function:
		node.Signature = inner.Signature
	case doctree.ForeignFunction:
		node.Signature = inner.Signature
	case doctree.Static:
		node.Type, node.Expr = encodeType(inner.Type), inner.Expr
	case doctree.Constant:
		node.Type, node.Expr = encodeType(inner.Type), inner.Expr
	case doctree.Typedef:
		node.Type = encodeType(inner.Type)
	case doctree.ForeignStatic:
		node.Type = encodeType(inner.Type)
	case doctree.Macro:
		node.Source = inner.Source
	case doctree.ExternCrate:
		node.ExternCrate = inner.Crate
	case doctree.Import:
		node.Path = inner.Path
	case doctree.Impl:
		node.For = encodeType(inner.For)
		if inner.Trait != nil {
			node.Trait = encodeType(*inner.Trait)
		}
		node.Items, err = encodeItems(inner.Items)
	case doctree.DefaultImpl:
		node.Trait = encodeType(inner.Trait)
	case doctree.AssociatedType:
		if inner.Default != nil {
			node.DefaultType = encodeType(*inner.Default)
		}
	case doctree.AssociatedConst:
		node.Type, node.DefaultValue = encodeType(inner.Type), inner.Default
	case doctree.Primitive:
		node.Primitive = inner.Name
	default:
		return node, fmt.Errorf("unsupported item payload %T of %v", item.Inner, item.ID)
	}
	return node, err
}
