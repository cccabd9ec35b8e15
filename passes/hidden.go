package passes

import (
	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/fold"
)

// StripHidden removes every item marked doc(hidden), then removes implementations
// whose implementing type or implemented trait was stripped.
// Hidden struct fields are kept as placeholders so the field positions survive.
func StripHidden(crate doctree.Crate) doctree.Crate {
	crate, stripped := stripHiddenItems(crate)
	return stripImpls(crate, func(id doctree.DefID) bool {
		return stripped.Has(id.Node)
	}, true)
}

// stripHiddenItems returns the stripped crate and the identifiers of removed or hidden items,
// descendants of a removed item included
func stripHiddenItems(crate doctree.Crate) (doctree.Crate, doctree.NodeSet) {
	stripper := &hiddenStripper{stripped: doctree.NewNodeSet()}
	crate = fold.Crate(stripper, crate)
	return crate, stripper.stripped
}

type hiddenStripper struct {
	stripped doctree.NodeSet
}

func (s *hiddenStripper) FoldItem(item doctree.Item) (doctree.Item, bool) {
	if !item.IsHiddenFromDoc() {
		return fold.Recur(s, item)
	}
	doctree.Walk(item, func(nested doctree.Item) bool {
		if nested.ID.IsLocal() {
			s.stripped.Add(nested.ID.Node)
		}
		return true
	})
	if _, ok := item.Inner.(doctree.StructField); ok {
		item.Inner = doctree.StructField{Hidden: true}
		return item, true
	}
	return item, false
}
