package passes

import (
	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/fold"
)

// stripImpls removes implementations referring to a local definition judged gone.
// The implemented trait is always checked, the implementing type only when checkTarget is set.
func stripImpls(crate doctree.Crate, gone func(id doctree.DefID) bool, checkTarget bool) doctree.Crate {
	return fold.Crate(&implStripper{gone: gone, checkTarget: checkTarget}, crate)
}

type implStripper struct {
	gone        func(id doctree.DefID) bool
	checkTarget bool
}

func (s *implStripper) FoldItem(item doctree.Item) (doctree.Item, bool) {
	impl, ok := item.Inner.(doctree.Impl)
	if !ok {
		return fold.Recur(s, item)
	}
	if s.checkTarget && s.refersToGone(impl.For) {
		return item, false
	}
	if impl.Trait != nil && s.refersToGone(*impl.Trait) {
		return item, false
	}
	return fold.Recur(s, item)
}

func (s *implStripper) refersToGone(t doctree.Type) bool {
	id, ok := t.Resolution()
	return ok && id.IsLocal() && s.gone(id)
}
