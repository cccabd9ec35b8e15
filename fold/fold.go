// Package fold provides generic recursive rewriting of a documentation tree.
//
// A pass implements Folder and handles only the items it cares about; everything
// else is delegated to Recur, which rebuilds the item with its children folded by
// the same Folder. Each item is visited exactly once per traversal, and a Folder
// only sees the subtree rooted at the item it is given.
package fold

import "github.com/viant/docfold/doctree"

// Folder rewrites a single item.
// Returning the item (possibly replaced) keeps it, returning false deletes it from its parent.
type Folder interface {
	FoldItem(item doctree.Item) (doctree.Item, bool)
}

// Func adapts a function to Folder
type Func func(item doctree.Item) (doctree.Item, bool)

// FoldItem calls f(item)
func (f Func) FoldItem(item doctree.Item) (doctree.Item, bool) {
	return f(item)
}

// Recur rebuilds the item with every child passed through f.FoldItem.
// Deleted children are removed from the parent; containers that own fields or
// variants record that some of them were stripped.
func Recur(f Folder, item doctree.Item) (doctree.Item, bool) {
	switch inner := item.Inner.(type) {
	case doctree.Module:
		inner.Items = Items(f, inner.Items)
		item.Inner = inner
	case doctree.Struct:
		fields := Items(f, inner.Fields)
		inner.FieldsStripped = inner.FieldsStripped || len(fields) != len(inner.Fields)
		inner.Fields = fields
		item.Inner = inner
	case doctree.Enum:
		variants := Items(f, inner.Variants)
		inner.VariantsStripped = inner.VariantsStripped || len(variants) != len(inner.Variants)
		inner.Variants = variants
		item.Inner = inner
	case doctree.Trait:
		inner.Items = Items(f, inner.Items)
		item.Inner = inner
	case doctree.Impl:
		inner.Items = Items(f, inner.Items)
		item.Inner = inner
	case doctree.Variant:
		if inner.Shape == doctree.StructVariant {
			fields := Items(f, inner.Fields)
			inner.FieldsStripped = inner.FieldsStripped || len(fields) != len(inner.Fields)
			inner.Fields = fields
			item.Inner = inner
		}
	}
	return item, true
}

// Items folds each item, dropping deleted ones and keeping the order of survivors
func Items(f Folder, items []doctree.Item) []doctree.Item {
	if items == nil {
		return nil
	}
	result := make([]doctree.Item, 0, len(items))
	for _, item := range items {
		if folded, ok := f.FoldItem(item); ok {
			result = append(result, folded)
		}
	}
	return result
}

// Crate folds the root module and the members of every external trait.
// The input crate is consumed: callers must use the returned crate only.
func Crate(f Folder, crate doctree.Crate) doctree.Crate {
	if crate.Module != nil {
		if module, ok := f.FoldItem(*crate.Module); ok {
			crate.Module = &module
		} else {
			crate.Module = nil
		}
	}
	if len(crate.ExternalTraits) > 0 {
		traits := make(map[doctree.DefID]doctree.Trait, len(crate.ExternalTraits))
		for _, id := range crate.ExternalTraitIDs() {
			trait := crate.ExternalTraits[id]
			trait.Items = Items(f, trait.Items)
			traits[id] = trait
		}
		crate.ExternalTraits = traits
	}
	return crate
}
