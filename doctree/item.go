package doctree

import "fmt"

// Item represents a documentable node of the crate
type Item struct {
	ID         DefID       // unique within the crate
	Name       string      // item name, empty for impls and the crate root
	Visibility Visibility  // visibility marker
	Attrs      []Attribute // attributes in source order
	Inner      Inner       // kind-specific payload
}

// Kind returns the item kind
func (i Item) Kind() ItemKind {
	if i.Inner == nil {
		return ""
	}
	return i.Inner.Kind()
}

// IsTrait returns true for trait items
func (i Item) IsTrait() bool {
	return i.Kind() == KindTrait
}

// IsPublic returns true if the item is explicitly public
func (i Item) IsPublic() bool {
	return i.Visibility == Public
}

// DocValue returns the first documentation fragment
func (i Item) DocValue() (string, bool) {
	for _, attr := range i.Attrs {
		if attr.IsDoc() {
			return attr.Value, true
		}
	}
	return "", false
}

// DocFragments returns all documentation fragments in order
func (i Item) DocFragments() []string {
	var result []string
	for _, attr := range i.Attrs {
		if attr.IsDoc() {
			result = append(result, attr.Value)
		}
	}
	return result
}

// IsHiddenFromDoc returns true if the item carries doc(hidden)
func (i Item) IsHiddenFromDoc() bool {
	for _, attr := range i.Attrs {
		if attr.Kind != AttrList || attr.Name != DocAttr {
			continue
		}
		for _, nested := range attr.List {
			if nested.Kind == AttrWord && nested.Name == HiddenWord {
				return true
			}
		}
	}
	return false
}

// Children returns items nested directly under the item
func (i Item) Children() []Item {
	switch inner := i.Inner.(type) {
	case Module:
		return inner.Items
	case Struct:
		return inner.Fields
	case Enum:
		return inner.Variants
	case Variant:
		return inner.Fields
	case Trait:
		return inner.Items
	case Impl:
		return inner.Items
	}
	return nil
}

func (i Item) String() string {
	if i.Name == "" {
		return fmt.Sprintf("%s(%v)", i.Kind(), i.ID)
	}
	return fmt.Sprintf("%s %s(%v)", i.Kind(), i.Name, i.ID)
}

// Walk visits the item and its descendants depth first, fn returning false skips the subtree
func Walk(item Item, fn func(item Item) bool) {
	if !fn(item) {
		return
	}
	for _, child := range item.Children() {
		Walk(child, fn)
	}
}
