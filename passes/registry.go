package passes

import (
	"sort"

	"github.com/viant/docfold/doctree"
)

const (
	NameStripHidden      = "strip-hidden"
	NameStripPrivate     = "strip-private"
	NameCollapseDocs     = "collapse-docs"
	NameUnindentComments = "unindent-comments"
)

// DefaultPasses lists passes run unless defaults are disabled, in run order
var DefaultPasses = []string{
	NameStripHidden,
	NameCollapseDocs,
	NameUnindentComments,
	NameStripPrivate,
}

// Env carries read-only inputs supplied by analysis
type Env struct {
	Exported doctree.NodeSet // node identifiers of the externally visible surface
}

// Payload is an optional side result of a pass; none of the built-in passes produce one
type Payload any

// Func transforms a crate it takes ownership of
type Func func(crate doctree.Crate, env Env) (doctree.Crate, Payload, error)

// Pass describes a named crate transformation
type Pass struct {
	Name        string
	Description string
	Run         Func
}

var registry = map[string]Pass{}

// Register adds a pass, replacing any pass with the same name
func Register(pass Pass) {
	registry[pass.Name] = pass
}

// Lookup returns a registered pass by name
func Lookup(name string) (Pass, bool) {
	pass, ok := registry[name]
	return pass, ok
}

// List returns registered passes sorted by name
func List() []Pass {
	result := make([]Pass, 0, len(registry))
	for _, pass := range registry {
		result = append(result, pass)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func init() {
	Register(Pass{
		Name:        NameStripHidden,
		Description: "strips all doc(hidden) items from the output",
		Run: func(crate doctree.Crate, _ Env) (doctree.Crate, Payload, error) {
			return StripHidden(crate), nil, nil
		},
	})
	Register(Pass{
		Name:        NameStripPrivate,
		Description: "strips all private items from a crate which cannot be seen externally",
		Run: func(crate doctree.Crate, env Env) (doctree.Crate, Payload, error) {
			return StripPrivate(crate, env.Exported), nil, nil
		},
	})
	Register(Pass{
		Name:        NameCollapseDocs,
		Description: "concatenates all document attributes into one document attribute",
		Run: func(crate doctree.Crate, _ Env) (doctree.Crate, Payload, error) {
			return CollapseDocs(crate), nil, nil
		},
	})
	Register(Pass{
		Name:        NameUnindentComments,
		Description: "removes excess indentation on comments in order for markdown to like it",
		Run: func(crate doctree.Crate, _ Env) (doctree.Crate, Payload, error) {
			crate, err := UnindentComments(crate)
			return crate, nil, err
		},
	})
}
