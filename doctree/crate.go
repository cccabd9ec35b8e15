package doctree

import (
	"cmp"
	"slices"
)

// Crate represents the documentable surface of one compilation unit
type Crate struct {
	Name           string
	Module         *Item           // root module, nil once stripped away
	ExternalTraits map[DefID]Trait // traits defined in other crates, keyed by definition
}

// NewCrate creates a crate with the supplied root module items
func NewCrate(name string, root DefID, items ...Item) Crate {
	return Crate{
		Name: name,
		Module: &Item{
			ID:         root,
			Name:       name,
			Visibility: Public,
			Inner:      Module{Items: items, IsCrate: true},
		},
	}
}

// Walk visits every item of the root module and of the external traits
func (c Crate) Walk(fn func(item Item) bool) {
	if c.Module != nil {
		Walk(*c.Module, fn)
	}
	for _, id := range c.ExternalTraitIDs() {
		for _, item := range c.ExternalTraits[id].Items {
			Walk(item, fn)
		}
	}
}

// Count returns number of items per kind
func (c Crate) Count() map[ItemKind]int {
	result := make(map[ItemKind]int)
	c.Walk(func(item Item) bool {
		result[item.Kind()]++
		return true
	})
	return result
}

// Len returns the total number of items
func (c Crate) Len() int {
	total := 0
	c.Walk(func(Item) bool {
		total++
		return true
	})
	return total
}

// Lookup returns the item with the given identifier
func (c Crate) Lookup(id DefID) (Item, bool) {
	var found Item
	var ok bool
	c.Walk(func(item Item) bool {
		if ok {
			return false
		}
		if item.ID == id {
			found, ok = item, true
			return false
		}
		return true
	})
	return found, ok
}

// IDs returns the set of node identifiers of local items
func (c Crate) IDs() NodeSet {
	result := NewNodeSet()
	c.Walk(func(item Item) bool {
		if item.ID.IsLocal() {
			result.Add(item.ID.Node)
		}
		return true
	})
	return result
}

// ExternalTraitIDs returns external trait identifiers in a stable order
func (c Crate) ExternalTraitIDs() []DefID {
	ids := make([]DefID, 0, len(c.ExternalTraits))
	for id := range c.ExternalTraits {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareDefIDs)
	return ids
}

func compareDefIDs(a, b DefID) int {
	if a.Crate != b.Crate {
		return cmp.Compare(a.Crate, b.Crate)
	}
	return cmp.Compare(a.Node, b.Node)
}
