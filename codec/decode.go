package codec

import (
	"fmt"

	"github.com/viant/docfold/doctree"
)

// Decode converts the document back into a crate and its export set
func (d *Document) Decode() (doctree.Crate, doctree.NodeSet, error) {
	crate := doctree.Crate{Name: d.Crate.Name}
	if d.Crate.Module != nil {
		module, err := decodeItem(*d.Crate.Module)
		if err != nil {
			return crate, nil, err
		}
		crate.Module = &module
	}
	if len(d.Crate.ExternalTraits) > 0 {
		crate.ExternalTraits = make(map[doctree.DefID]doctree.Trait, len(d.Crate.ExternalTraits))
		for _, trait := range d.Crate.ExternalTraits {
			items, err := decodeItems(trait.Items)
			if err != nil {
				return crate, nil, err
			}
			crate.ExternalTraits[decodeID(trait.ID)] = doctree.Trait{Items: items}
		}
	}
	return crate, doctree.NewNodeSet(d.Exported...), nil
}

func decodeID(id idNode) doctree.DefID {
	return doctree.DefID{Crate: doctree.CrateNum(id.Crate), Node: doctree.NodeID(id.Node)}
}

func decodeType(node *typeNode) doctree.Type {
	if node == nil {
		return doctree.Type{}
	}
	if node.ID != nil {
		return doctree.Resolved(node.Path, decodeID(*node.ID))
	}
	return doctree.Unresolved(node.Path)
}

func decodeOptionalType(node *typeNode) *doctree.Type {
	if node == nil {
		return nil
	}
	t := decodeType(node)
	return &t
}

func decodeTypes(nodes []typeNode) []doctree.Type {
	if len(nodes) == 0 {
		return nil
	}
	result := make([]doctree.Type, len(nodes))
	for i := range nodes {
		result[i] = decodeType(&nodes[i])
	}
	return result
}

func decodeAttrs(nodes []attrNode) ([]doctree.Attribute, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	result := make([]doctree.Attribute, len(nodes))
	for i, node := range nodes {
		kind, ok := lookupKey(attrKinds, node.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown attribute kind %q", node.Kind)
		}
		list, err := decodeAttrs(node.List)
		if err != nil {
			return nil, err
		}
		result[i] = doctree.Attribute{Kind: kind, Name: node.Name, Value: node.Value, List: list}
	}
	return result, nil
}

func decodeItems(nodes []itemNode) ([]doctree.Item, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	result := make([]doctree.Item, len(nodes))
	for i, node := range nodes {
		item, err := decodeItem(node)
		if err != nil {
			return nil, err
		}
		result[i] = item
	}
	return result, nil
}

func decodeItem(node itemNode) (doctree.Item, error) {
	item := doctree.Item{
		ID:         decodeID(node.ID),
		Name:       node.Name,
		Visibility: doctree.ParseVisibility(node.Visibility),
	}
	var err error
	if item.Attrs, err = decodeAttrs(node.Attrs); err != nil {
		return item, fmt.Errorf("item %v: %w", item.ID, err)
	}
	if item.Inner, err = decodeInner(node); err != nil {
		return item, fmt.Errorf("item %v: %w", item.ID, err)
	}
	return item, nil
}

func decodeInner(node itemNode) (doctree.Inner, error) {
	switch doctree.ItemKind(node.Kind) {
	case doctree.KindModule:
		items, err := decodeItems(node.Items)
		return doctree.Module{Items: items, IsCrate: node.IsCrate}, err
	case doctree.KindStruct:
		fields, err := decodeItems(node.Fields)
		return doctree.Struct{Fields: fields, FieldsStripped: node.FieldsStripped}, err
	case doctree.KindStructField:
		return doctree.StructField{Type: decodeType(node.Type), Hidden: node.Hidden}, nil
	case doctree.KindEnum:
		variants, err := decodeItems(node.Variants)
		return doctree.Enum{Variants: variants, VariantsStripped: node.VariantsStripped}, err
	case doctree.KindVariant:
		kind := doctree.CLikeVariant
		if node.VariantKind != "" {
			var ok bool
			if kind, ok = lookupKey(variantKinds, node.VariantKind); !ok {
				return nil, fmt.Errorf("unknown variant kind %q", node.VariantKind)
			}
		}
		fields, err := decodeItems(node.Fields)
		return doctree.Variant{Shape: kind, Types: decodeTypes(node.Types), Fields: fields, FieldsStripped: node.FieldsStripped}, err
	case doctree.KindTrait:
		items, err := decodeItems(node.Items)
		return doctree.Trait{Items: items}, err
	case doctree.KindTyMethod:
		return doctree.TyMethod{Signature: node.Signature}, nil
	case doctree.KindMethod:
		return doctree.Method{Signature: node.Signature}, nil
	case doctree.KindFunction:
		return doctree.Function{Signature: node.Signature}, nil
	case doctree.KindForeignFunction:
		return doctree.ForeignFunction{Signature: node.Signature}, nil
	case doctree.KindStatic:
		return doctree.Static{Type: decodeType(node.Type), Expr: node.Expr}, nil
	case doctree.KindConstant:
		return doctree.Constant{Type: decodeType(node.Type), Expr: node.Expr}, nil
	case doctree.KindTypedef:
		return doctree.Typedef{Type: decodeType(node.Type)}, nil
	case doctree.KindForeignStatic:
		return doctree.ForeignStatic{Type: decodeType(node.Type)}, nil
	case doctree.KindMacro:
		return doctree.Macro{Source: node.Source}, nil
	case doctree.KindExternCrate:
		return doctree.ExternCrate{Crate: node.ExternCrate}, nil
	case doctree.KindImport:
		return doctree.Import{Path: node.Path}, nil
	case doctree.KindImpl:
		items, err := decodeItems(node.Items)
		return doctree.Impl{For: decodeType(node.For), Trait: decodeOptionalType(node.Trait), Items: items}, err
	case doctree.KindDefaultImpl:
		return doctree.DefaultImpl{Trait: decodeType(node.Trait)}, nil
	case doctree.KindAssociatedType:
		return doctree.AssociatedType{Default: decodeOptionalType(node.DefaultType)}, nil
	case doctree.KindAssociatedConst:
		return doctree.AssociatedConst{Type: decodeType(node.Type), Default: node.DefaultValue}, nil
	case doctree.KindPrimitive:
		return doctree.Primitive{Name: node.Primitive}, nil
	}
	return nil, fmt.Errorf("unknown item kind %q", node.Kind)
}
