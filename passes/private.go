package passes

import (
	"fmt"

	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/fold"
)

// StripPrivate removes items that are not part of the externally visible surface.
// exported is the set of local node identifiers reported visible by analysis; it is only read.
// Trait implementations of local traits that did not survive are removed afterwards.
func StripPrivate(crate doctree.Crate, exported doctree.NodeSet) doctree.Crate {
	crate, retained := stripPrivateItems(crate, exported)
	return stripImpls(crate, func(id doctree.DefID) bool {
		return !retained.Has(id.Node)
	}, false)
}

// stripPrivateItems returns the stripped crate and the identifiers of every retained item
func stripPrivateItems(crate doctree.Crate, exported doctree.NodeSet) (doctree.Crate, doctree.NodeSet) {
	stripper := &privateStripper{exported: exported, retained: doctree.NewNodeSet()}
	crate = fold.Crate(stripper, crate)
	return crate, stripper.retained
}

type privateStripper struct {
	exported doctree.NodeSet
	retained doctree.NodeSet
}

func (s *privateStripper) FoldItem(item doctree.Item) (doctree.Item, bool) {
	switch inner := item.Inner.(type) {
	case doctree.Typedef, doctree.Static, doctree.Struct, doctree.Enum, doctree.Trait,
		doctree.Function, doctree.Variant, doctree.Method,
		doctree.ForeignFunction, doctree.ForeignStatic:
		if item.ID.IsLocal() {
			if !s.isExported(item.ID) {
				return item, false
			}
			// traits are reported exported regardless of their declared visibility
			if item.IsTrait() && !item.IsPublic() {
				return item, false
			}
		}
	case doctree.Constant:
		if item.ID.IsLocal() && !s.isExported(item.ID) {
			return item, false
		}
	case doctree.ExternCrate, doctree.Import:
		if !item.IsPublic() {
			return item, false
		}
	case doctree.StructField:
		if !item.IsPublic() {
			item.Inner = doctree.StructField{Hidden: true}
			return item, true
		}
	case doctree.Module:
		// emptiness is checked after recursion
	case doctree.Impl:
		if id, ok := inner.For.Resolution(); ok && id.IsLocal() && !s.isExported(id) {
			return item, false
		}
	case doctree.DefaultImpl, doctree.Macro, doctree.TyMethod, doctree.Primitive,
		doctree.AssociatedConst, doctree.AssociatedType:
		// never stripped directly
	default:
		panic(fmt.Sprintf("passes: unhandled item payload %T", item.Inner))
	}

	if isOpaque(item) {
		s.retain(item)
		return item, true
	}

	item, _ = fold.Recur(s, item)
	switch inner := item.Inner.(type) {
	case doctree.Module:
		if _, hasDoc := item.DocValue(); len(inner.Items) == 0 && !hasDoc {
			return item, false
		}
	case doctree.Impl:
		if len(inner.Items) == 0 {
			return item, false
		}
	}
	s.retain(item)
	return item, true
}

func (s *privateStripper) isExported(id doctree.DefID) bool {
	return s.exported.Has(id.Node)
}

func (s *privateStripper) retain(item doctree.Item) {
	if item.ID.IsLocal() {
		s.retained.Add(item.ID.Node)
	}
}

// isOpaque reports items whose members are not filtered by visibility:
// trait members follow the trait, trait impls are public by construction,
// and struct variant fields inherit the variant's visibility.
func isOpaque(item doctree.Item) bool {
	switch inner := item.Inner.(type) {
	case doctree.Trait:
		return true
	case doctree.Impl:
		return inner.Trait != nil
	case doctree.Variant:
		return inner.Shape == doctree.StructVariant
	}
	return false
}
