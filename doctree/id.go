package doctree

import (
	"strconv"

	"github.com/viant/docfold/internal/sets"
)

// CrateNum identifies the crate (compilation unit) a definition belongs to
type CrateNum uint32

// LocalCrate is the crate being documented
const LocalCrate CrateNum = 0

// NodeID identifies a node within its crate
type NodeID uint32

// DefID is a crate-qualified node identifier
type DefID struct {
	Crate CrateNum
	Node  NodeID
}

// Local returns a DefID of the local crate
func Local(node NodeID) DefID {
	return DefID{Crate: LocalCrate, Node: node}
}

// IsLocal returns true if the definition belongs to the documented crate
func (d DefID) IsLocal() bool {
	return d.Crate == LocalCrate
}

func (d DefID) String() string {
	return strconv.FormatUint(uint64(d.Crate), 10) + ":" + strconv.FormatUint(uint64(d.Node), 10)
}

// Visibility represents item visibility marker
type Visibility uint8

const (
	VisibilityUnspecified Visibility = iota // no visibility recorded
	Public                                  // explicitly public
	Inherited                               // not public
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Inherited:
		return "inherited"
	default:
		return "unspecified"
	}
}

// ParseVisibility parses visibility name, unknown names map to VisibilityUnspecified
func ParseVisibility(name string) Visibility {
	switch name {
	case "public", "pub":
		return Public
	case "inherited", "private":
		return Inherited
	}
	return VisibilityUnspecified
}

// NodeSet is a set of local node identifiers
type NodeSet = sets.Set[NodeID]

// NewNodeSet creates a node set
func NewNodeSet(ids ...NodeID) NodeSet {
	return sets.New(ids...)
}
