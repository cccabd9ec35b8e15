package doctree

// AttrKind represents attribute shape
type AttrKind uint8

const (
	AttrWord      AttrKind = iota // #[name]
	AttrList                      // #[name(nested, ...)]
	AttrNameValue                 // #[name = "value"]
)

// DocAttr is the attribute name carrying documentation text
const DocAttr = "doc"

// HiddenWord marks an item hidden when nested in a doc list attribute
const HiddenWord = "hidden"

// Attribute represents an item attribute
type Attribute struct {
	Kind  AttrKind
	Name  string
	Value string      // NameValue only
	List  []Attribute // List only
}

// Word creates a word attribute
func Word(name string) Attribute {
	return Attribute{Kind: AttrWord, Name: name}
}

// List creates a list attribute
func List(name string, nested ...Attribute) Attribute {
	return Attribute{Kind: AttrList, Name: name, List: nested}
}

// NameValue creates a name/value attribute
func NameValue(name, value string) Attribute {
	return Attribute{Kind: AttrNameValue, Name: name, Value: value}
}

// Doc creates a documentation fragment
func Doc(text string) Attribute {
	return NameValue(DocAttr, text)
}

// Hidden creates the doc(hidden) attribute
func Hidden() Attribute {
	return List(DocAttr, Word(HiddenWord))
}

// IsDoc returns true for a documentation fragment
func (a Attribute) IsDoc() bool {
	return a.Kind == AttrNameValue && a.Name == DocAttr
}

// Clone creates a deep copy of the attribute
func (a Attribute) Clone() Attribute {
	if len(a.List) == 0 {
		return a
	}
	nested := make([]Attribute, len(a.List))
	for i, attr := range a.List {
		nested[i] = attr.Clone()
	}
	a.List = nested
	return a
}
