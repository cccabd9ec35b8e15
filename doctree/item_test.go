package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_IsHiddenFromDoc(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []Attribute
		expected bool
	}{
		{name: "doc hidden", attrs: []Attribute{Hidden()}, expected: true},
		{name: "doc hidden among others", attrs: []Attribute{List(DocAttr, Word("inline"), Word(HiddenWord))}, expected: true},
		{name: "documentation only", attrs: []Attribute{Doc("hidden")}, expected: false},
		{name: "other list", attrs: []Attribute{List("cfg", Word(HiddenWord))}, expected: false},
		{name: "bare word", attrs: []Attribute{Word(HiddenWord)}, expected: false},
		{name: "no attributes", expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{ID: Local(1), Name: "x", Attrs: tt.attrs, Inner: Function{}}
			assert.Equal(t, tt.expected, item.IsHiddenFromDoc())
		})
	}
}

func TestItem_Docs(t *testing.T) {
	item := Item{Attrs: []Attribute{Word("inline"), Doc("one"), Hidden(), Doc("two")}}
	doc, ok := item.DocValue()
	assert.True(t, ok)
	assert.Equal(t, "one", doc)
	assert.Equal(t, []string{"one", "two"}, item.DocFragments())

	_, ok = Item{}.DocValue()
	assert.False(t, ok)
	assert.Nil(t, Item{}.DocFragments())
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "function f(0:3)", Item{ID: Local(3), Name: "f", Inner: Function{}}.String())
	assert.Equal(t, "impl(2:7)", Item{ID: DefID{Crate: 2, Node: 7}, Inner: Impl{}}.String())
}

func TestAttribute_Clone(t *testing.T) {
	attr := Hidden()
	clone := attr.Clone()
	clone.List[0].Name = "inline"
	assert.Equal(t, HiddenWord, attr.List[0].Name)
}

func TestParseVisibility(t *testing.T) {
	for name, expected := range map[string]Visibility{
		"public":    Public,
		"pub":       Public,
		"inherited": Inherited,
		"private":   Inherited,
		"":          VisibilityUnspecified,
		"crate":     VisibilityUnspecified,
	} {
		assert.Equal(t, expected, ParseVisibility(name), name)
	}
	for _, v := range []Visibility{Public, Inherited} {
		assert.Equal(t, v, ParseVisibility(v.String()))
	}
}

func sampleCrate() Crate {
	crate := NewCrate("sample", Local(1),
		Item{ID: Local(2), Name: "S", Visibility: Public, Inner: Struct{Fields: []Item{
			{ID: Local(3), Name: "x", Visibility: Public, Inner: StructField{Type: Unresolved("int")}},
		}}},
		Item{ID: Local(4), Visibility: Public, Inner: Impl{For: Resolved("S", Local(2)), Items: []Item{
			{ID: Local(5), Name: "Len", Visibility: Public, Inner: Method{Signature: "func (s S) Len() int"}},
		}}},
	)
	crate.ExternalTraits = map[DefID]Trait{
		{Crate: 3, Node: 1}: {Items: []Item{{ID: DefID{Crate: 3, Node: 2}, Name: "String", Inner: TyMethod{}}}},
	}
	return crate
}

func TestCrate_Queries(t *testing.T) {
	crate := sampleCrate()
	assert.Equal(t, 6, crate.Len())
	assert.Equal(t, map[ItemKind]int{
		KindModule:      1,
		KindStruct:      1,
		KindStructField: 1,
		KindImpl:        1,
		KindMethod:      1,
		KindTyMethod:    1,
	}, crate.Count())
	assert.ElementsMatch(t, []NodeID{1, 2, 3, 4, 5}, crate.IDs().Values())

	item, ok := crate.Lookup(Local(5))
	require.True(t, ok)
	assert.Equal(t, "Len", item.Name)
	item, ok = crate.Lookup(DefID{Crate: 3, Node: 2})
	require.True(t, ok)
	assert.Equal(t, "String", item.Name)
	_, ok = crate.Lookup(Local(42))
	assert.False(t, ok)
}

func TestCrate_ExternalTraitIDs(t *testing.T) {
	crate := Crate{ExternalTraits: map[DefID]Trait{
		{Crate: 2, Node: 1}: {},
		{Crate: 1, Node: 9}: {},
		{Crate: 1, Node: 3}: {},
	}}
	assert.Equal(t, []DefID{{Crate: 1, Node: 3}, {Crate: 1, Node: 9}, {Crate: 2, Node: 1}}, crate.ExternalTraitIDs())
}

func TestFingerprint(t *testing.T) {
	first, err := Fingerprint(sampleCrate())
	require.NoError(t, err)
	second, err := Fingerprint(sampleCrate())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	changed := sampleCrate()
	changed.Module.Attrs = []Attribute{Doc("docs")}
	third, err := Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	empty := sampleCrate()
	empty.Module = nil
	fourth, err := Fingerprint(empty)
	require.NoError(t, err)
	assert.NotEqual(t, first, fourth)
}

func TestVariant_Shape(t *testing.T) {
	item := Item{ID: Local(2), Name: "V", Inner: Variant{Shape: StructVariant}}
	assert.Equal(t, KindVariant, item.Kind())
	assert.Equal(t, StructVariant, item.Inner.(Variant).Shape)
}
