package passes

import (
	"strings"

	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/fold"
)

// CollapseDocs merges the documentation fragments of every item into a single
// fragment, one fragment per line, appended after the remaining attributes.
func CollapseDocs(crate doctree.Crate) doctree.Crate {
	return fold.Crate(collapser{}, crate)
}

type collapser struct{}

func (c collapser) FoldItem(item doctree.Item) (doctree.Item, bool) {
	item.Attrs = collapseAttrs(item.Attrs)
	return fold.Recur(c, item)
}

func collapseAttrs(attrs []doctree.Attribute) []doctree.Attribute {
	if len(attrs) == 0 {
		return attrs
	}
	var fragments []string
	result := make([]doctree.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if attr.IsDoc() {
			fragments = append(fragments, attr.Value)
			continue
		}
		result = append(result, attr)
	}
	if len(fragments) > 0 {
		result = append(result, doctree.Doc(strings.Join(fragments, "\n")))
	}
	return result
}
