// Package codec reads and writes crates together with their export set.
package codec

import (
	"github.com/viant/docfold/doctree"
)

// Document is the wire form of a crate and the externally visible node identifiers
type Document struct {
	Crate    crateNode        `yaml:"crate" json:"crate"`
	Exported []doctree.NodeID `yaml:"exported,omitempty" json:"exported,omitempty"`
}

type crateNode struct {
	Name           string          `yaml:"name" json:"name"`
	Module         *itemNode       `yaml:"module,omitempty" json:"module,omitempty"`
	ExternalTraits []externalTrait `yaml:"externalTraits,omitempty" json:"externalTraits,omitempty"`
}

type externalTrait struct {
	ID    idNode     `yaml:"id" json:"id"`
	Items []itemNode `yaml:"items,omitempty" json:"items,omitempty"`
}

type idNode struct {
	Crate uint32 `yaml:"crate" json:"crate"`
	Node  uint32 `yaml:"node" json:"node"`
}

type typeNode struct {
	Path string  `yaml:"path" json:"path"`
	ID   *idNode `yaml:"id,omitempty" json:"id,omitempty"`
}

type attrNode struct {
	Kind  string     `yaml:"kind" json:"kind"`
	Name  string     `yaml:"name" json:"name"`
	Value string     `yaml:"value,omitempty" json:"value,omitempty"`
	List  []attrNode `yaml:"list,omitempty" json:"list,omitempty"`
}

// itemNode flattens every payload; only the fields of Kind are populated
type itemNode struct {
	ID         idNode     `yaml:"id" json:"id"`
	Name       string     `yaml:"name,omitempty" json:"name,omitempty"`
	Visibility string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Attrs      []attrNode `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Kind       string     `yaml:"kind" json:"kind"`

	IsCrate          bool       `yaml:"isCrate,omitempty" json:"isCrate,omitempty"`
	Items            []itemNode `yaml:"items,omitempty" json:"items,omitempty"`
	Fields           []itemNode `yaml:"fields,omitempty" json:"fields,omitempty"`
	FieldsStripped   bool       `yaml:"fieldsStripped,omitempty" json:"fieldsStripped,omitempty"`
	Variants         []itemNode `yaml:"variants,omitempty" json:"variants,omitempty"`
	VariantsStripped bool       `yaml:"variantsStripped,omitempty" json:"variantsStripped,omitempty"`
	VariantKind      string     `yaml:"variantKind,omitempty" json:"variantKind,omitempty"`
	Types            []typeNode `yaml:"types,omitempty" json:"types,omitempty"`
	Hidden           bool       `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Type             *typeNode  `yaml:"type,omitempty" json:"type,omitempty"`
	Signature        string     `yaml:"signature,omitempty" json:"signature,omitempty"`
	Expr             string     `yaml:"expr,omitempty" json:"expr,omitempty"`
	Source           string     `yaml:"source,omitempty" json:"source,omitempty"`
	ExternCrate      string     `yaml:"externCrate,omitempty" json:"externCrate,omitempty"`
	Path             string     `yaml:"path,omitempty" json:"path,omitempty"`
	For              *typeNode  `yaml:"for,omitempty" json:"for,omitempty"`
	Trait            *typeNode  `yaml:"trait,omitempty" json:"trait,omitempty"`
	DefaultType      *typeNode  `yaml:"defaultType,omitempty" json:"defaultType,omitempty"`
	DefaultValue     string     `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Primitive        string     `yaml:"primitive,omitempty" json:"primitive,omitempty"`
}

var variantKinds = map[doctree.VariantKind]string{
	doctree.CLikeVariant:  "cLike",
	doctree.TupleVariant:  "tuple",
	doctree.StructVariant: "struct",
}

var attrKinds = map[doctree.AttrKind]string{
	doctree.AttrWord:      "word",
	doctree.AttrList:      "list",
	doctree.AttrNameValue: "nameValue",
}

func lookupKey[K comparable](values map[K]string, value string) (K, bool) {
	for k, v := range values {
		if v == value {
			return k, true
		}
	}
	var zero K
	return zero, false
}
