package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docfold/doctree"
)

func privateFixture() (doctree.Crate, doctree.NodeSet) {
	exported := doctree.NewNodeSet(2, 3, 4, 6, 8, 9, 15, 17, 24, 25)
	crate := doctree.NewCrate("demo", doctree.Local(1),
		newStruct(2, "Pub", doctree.Public,
			newField(3, "x", doctree.Public),
			newField(4, "y", doctree.Inherited),
		),
		newStruct(5, "Priv", doctree.Inherited),
		newItem(6, "PubTrait", doctree.Public, doctree.Trait{Items: []doctree.Item{
			newItem(7, "required", doctree.VisibilityUnspecified, doctree.TyMethod{Signature: "fn required()"}),
		}}),
		newItem(8, "UnspecifiedTrait", doctree.VisibilityUnspecified, doctree.Trait{}),
		newItem(9, "PrivTrait", doctree.Inherited, doctree.Trait{}),
		newImpl(10, typeRef("Pub", 2), traitRef("PrivTrait", doctree.Local(9)),
			newItem(31, "privTraitMethod", doctree.Inherited, doctree.Method{}),
		),
		newImpl(11, typeRef("Priv", 5), traitRef("PubTrait", doctree.Local(6))),
		newImpl(12, typeRef("Pub", 2), nil,
			newItem(13, "hiddenMethod", doctree.Inherited, doctree.Method{}),
		),
		newImpl(14, typeRef("Pub", 2), nil,
			newItem(15, "shownMethod", doctree.Public, doctree.Method{}),
		),
		newItem(16, "C", doctree.Inherited, doctree.Constant{Expr: "1"}),
		newItem(17, "D", doctree.Public, doctree.Constant{Expr: "2"}),
		newItem(18, "privImport", doctree.Inherited, doctree.Import{Path: "a::b"}),
		newItem(19, "pubImport", doctree.Public, doctree.Import{Path: "a::c"}),
		newModule(20, "empty",
			newItem(21, "privFn", doctree.Inherited, doctree.Function{}),
		),
		newItem(22, "documented", doctree.Public, doctree.Module{Items: []doctree.Item{
			newItem(23, "privFn2", doctree.Inherited, doctree.Function{}),
		}}, doctree.Doc("Module docs.")),
		newItem(24, "E", doctree.Public, doctree.Enum{Variants: []doctree.Item{
			newItem(25, "V1", doctree.VisibilityUnspecified, doctree.Variant{
				Shape:  doctree.StructVariant,
				Fields: []doctree.Item{newField(26, "f", doctree.Inherited)},
			}),
			newItem(27, "V2", doctree.VisibilityUnspecified, doctree.Variant{Shape: doctree.CLikeVariant}),
		}}),
		newItem(28, "m", doctree.Inherited, doctree.Macro{Source: "macro_rules! m {}"}),
		doctree.Item{ID: doctree.DefID{Crate: 2, Node: 29}, Name: "reexported", Inner: doctree.Function{}},
		newImpl(30, typeRef("Pub", 2), traitRef("Display", doctree.DefID{Crate: 2, Node: 99})),
		newItem(32, "u8", doctree.VisibilityUnspecified, doctree.Primitive{Name: "u8"}),
	)
	return crate, exported
}

func TestStripPrivate(t *testing.T) {
	crate, exported := privateFixture()
	crate = StripPrivate(crate, exported)
	items := rootItems(t, crate)

	assert.Equal(t, []string{
		"Pub",
		"PubTrait",
		"impl Pub",
		"D",
		"pubImport",
		"documented",
		"E",
		"m",
		"reexported",
		"impl Display for Pub",
		"u8",
	}, names(items))

	assertConsistentImpls(t, crate)
	assertNoEmptyContainers(t, crate)

	t.Run("non public fields become placeholders", func(t *testing.T) {
		pub, ok := find(items, "Pub")
		require.True(t, ok)
		fields := pub.Children()
		require.Len(t, fields, 2)
		assert.False(t, fields[0].Inner.(doctree.StructField).Hidden)
		assert.True(t, fields[1].Inner.(doctree.StructField).Hidden)
	})

	t.Run("trait members are not filtered", func(t *testing.T) {
		trait, ok := find(items, "PubTrait")
		require.True(t, ok)
		assert.Equal(t, []string{"required"}, names(trait.Children()))
	})

	t.Run("documented module survives empty", func(t *testing.T) {
		module, ok := find(items, "documented")
		require.True(t, ok)
		assert.Empty(t, module.Children())
	})

	t.Run("struct variant fields inherit visibility", func(t *testing.T) {
		enum, ok := find(items, "E")
		require.True(t, ok)
		variants := enum.Children()
		assert.Equal(t, []string{"V1"}, names(variants))
		assert.True(t, enum.Inner.(doctree.Enum).VariantsStripped)
		fields := variants[0].Children()
		require.Len(t, fields, 1)
		assert.False(t, fields[0].Inner.(doctree.StructField).Hidden)
	})
}

func TestStripPrivateItems_Retained(t *testing.T) {
	crate, exported := privateFixture()
	_, retained := stripPrivateItems(crate, exported)

	for _, node := range []doctree.NodeID{1, 2, 3, 6, 10, 14, 15, 17, 19, 22, 24, 25, 28, 30, 32} {
		assert.Truef(t, retained.Has(node), "node %d should be retained", node)
	}
	for _, node := range []doctree.NodeID{4, 5, 8, 9, 11, 12, 13, 16, 18, 20, 21, 23, 27, 29} {
		assert.Falsef(t, retained.Has(node), "node %d should not be retained", node)
	}
}

func TestStripPrivate_TraitVisibility(t *testing.T) {
	tests := []struct {
		name       string
		visibility doctree.Visibility
		exported   bool
		retained   bool
	}{
		{name: "public exported", visibility: doctree.Public, exported: true, retained: true},
		{name: "unspecified exported", visibility: doctree.VisibilityUnspecified, exported: true, retained: false},
		{name: "inherited exported", visibility: doctree.Inherited, exported: true, retained: false},
		{name: "public not exported", visibility: doctree.Public, exported: false, retained: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exported := doctree.NewNodeSet()
			if tt.exported {
				exported.Add(2)
			}
			crate := doctree.NewCrate("traits", doctree.Local(1),
				newItem(2, "T", tt.visibility, doctree.Trait{}),
				newItem(3, "keep", doctree.Public, doctree.Macro{}),
			)
			crate = StripPrivate(crate, exported)
			_, ok := find(rootItems(t, crate), "T")
			assert.Equal(t, tt.retained, ok)
		})
	}
}

func TestStripPrivate_NestedDefinitions(t *testing.T) {
	crate, exported := nestedFixture()
	crate = StripPrivate(crate, exported)
	items := rootItems(t, crate)
	assert.Equal(t, []string{"Outer", "private", "impl Inner", "impl Tr for Outer", "impl Outer"}, names(items))

	module, ok := find(items, "private")
	require.True(t, ok)
	assert.Equal(t, []string{"Inner", "Tr"}, names(module.Children()))
}

func TestStripPrivate_EmptyRoot(t *testing.T) {
	crate := doctree.NewCrate("nothing", doctree.Local(1),
		newItem(2, "f", doctree.Inherited, doctree.Function{}),
	)
	crate = StripPrivate(crate, doctree.NewNodeSet())
	assert.Nil(t, crate.Module)
}

func TestStripPrivate_NestedModulesCollapse(t *testing.T) {
	crate := doctree.NewCrate("nested", doctree.Local(1),
		newModule(2, "outer",
			newModule(3, "inner",
				newItem(4, "f", doctree.Inherited, doctree.Function{}),
			),
		),
		newItem(5, "g", doctree.Public, doctree.Function{}),
	)
	crate = StripPrivate(crate, doctree.NewNodeSet(5))
	assert.Equal(t, []string{"g"}, names(rootItems(t, crate)))
}
