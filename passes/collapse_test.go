package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docfold/doctree"
)

func TestCollapseDocs(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []doctree.Attribute
		expected []doctree.Attribute
	}{
		{
			name:     "merge order",
			attrs:    []doctree.Attribute{doctree.Doc("a"), doctree.Doc("b")},
			expected: []doctree.Attribute{doctree.Doc("a\nb")},
		},
		{
			name:     "single fragment",
			attrs:    []doctree.Attribute{doctree.Doc("only")},
			expected: []doctree.Attribute{doctree.Doc("only")},
		},
		{
			name: "other attributes keep their order",
			attrs: []doctree.Attribute{
				doctree.Word("inline"),
				doctree.Doc("first"),
				doctree.NameValue("cfg", "unix"),
				doctree.Doc("second"),
				doctree.Hidden(),
			},
			expected: []doctree.Attribute{
				doctree.Word("inline"),
				doctree.NameValue("cfg", "unix"),
				doctree.Hidden(),
				doctree.Doc("first\nsecond"),
			},
		},
		{
			name:     "no fragments",
			attrs:    []doctree.Attribute{doctree.Word("inline")},
			expected: []doctree.Attribute{doctree.Word("inline")},
		},
		{
			name:     "no attributes",
			attrs:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crate := doctree.NewCrate("docs", doctree.Local(1),
				newItem(2, "f", doctree.Public, doctree.Function{}, tt.attrs...),
			)
			crate = CollapseDocs(crate)
			f, ok := find(rootItems(t, crate), "f")
			require.True(t, ok)
			assert.Equal(t, tt.expected, f.Attrs)
		})
	}
}

func TestCollapseDocs_Nested(t *testing.T) {
	crate := doctree.NewCrate("docs", doctree.Local(1),
		newStruct(2, "S", doctree.Public,
			newField(3, "x", doctree.Public, doctree.Doc("one"), doctree.Doc("two")),
		),
	)
	crate.Module.Attrs = []doctree.Attribute{doctree.Doc("crate"), doctree.Doc("docs")}
	crate = CollapseDocs(crate)

	root, _ := crate.Module.DocValue()
	assert.Equal(t, "crate\ndocs", root)
	s, ok := find(rootItems(t, crate), "S")
	require.True(t, ok)
	field, _ := s.Children()[0].DocValue()
	assert.Equal(t, "one\ntwo", field)
}

func TestCollapseThenUnindent(t *testing.T) {
	crate := doctree.NewCrate("docs", doctree.Local(1),
		newItem(2, "f", doctree.Public, doctree.Function{},
			doctree.Doc(" Adds numbers."),
			doctree.Doc(""),
			doctree.Doc(" Returns the sum."),
		),
	)
	crate, err := UnindentComments(CollapseDocs(crate))
	require.NoError(t, err)
	f, ok := find(rootItems(t, crate), "f")
	require.True(t, ok)
	doc, _ := f.DocValue()
	assert.Equal(t, "Adds numbers.\n\nReturns the sum.", doc)
}
