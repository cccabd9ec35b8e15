package doctree

import (
	"fmt"
	"io"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint computes a structural hash of the crate; equal crates share a fingerprint
func Fingerprint(crate Crate) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(h, "crate %q\n", crate.Name)
	if crate.Module != nil {
		writeItem(h, *crate.Module, 0)
	}
	for _, id := range crate.ExternalTraitIDs() {
		fmt.Fprintf(h, "external %v\n", id)
		for _, item := range crate.ExternalTraits[id].Items {
			writeItem(h, item, 1)
		}
	}
	return h.Sum64(), nil
}

func writeItem(w io.Writer, item Item, depth int) {
	fmt.Fprintf(w, "%d %s %v %q %s\n", depth, item.Kind(), item.ID, item.Name, item.Visibility)
	for _, attr := range item.Attrs {
		writeAttr(w, attr)
	}
	fmt.Fprintf(w, "payload %s\n", payload(item.Inner))
	for _, child := range item.Children() {
		writeItem(w, child, depth+1)
	}
}

func writeAttr(w io.Writer, attr Attribute) {
	fmt.Fprintf(w, "attr %d %q %q [", attr.Kind, attr.Name, attr.Value)
	for _, nested := range attr.List {
		writeAttr(w, nested)
	}
	io.WriteString(w, "]\n")
}

func typeString(t Type) string {
	if id, ok := t.Resolution(); ok {
		return fmt.Sprintf("%q@%v", t.Path, id)
	}
	return fmt.Sprintf("%q", t.Path)
}

// payload renders the scalar part of the payload, children are written separately
func payload(inner Inner) string {
	switch v := inner.(type) {
	case Module:
		return fmt.Sprintf("crate=%v", v.IsCrate)
	case Struct:
		return fmt.Sprintf("stripped=%v", v.FieldsStripped)
	case StructField:
		return fmt.Sprintf("%s hidden=%v", typeString(v.Type), v.Hidden)
	case Enum:
		return fmt.Sprintf("stripped=%v", v.VariantsStripped)
	case Variant:
		types := ""
		for _, t := range v.Types {
			types += typeString(t) + ","
		}
		return fmt.Sprintf("%d (%s) stripped=%v", v.Shape, types, v.FieldsStripped)
	case Trait:
		return ""
	case TyMethod:
		return v.Signature
	case Method:
		return v.Signature
	case Function:
		return v.Signature
	case Static:
		return typeString(v.Type) + "=" + v.Expr
	case Constant:
		return typeString(v.Type) + "=" + v.Expr
	case Typedef:
		return typeString(v.Type)
	case Macro:
		return v.Source
	case ExternCrate:
		return v.Crate
	case Import:
		return v.Path
	case Impl:
		trait := "-"
		if v.Trait != nil {
			trait = typeString(*v.Trait)
		}
		return typeString(v.For) + " " + trait
	case DefaultImpl:
		return typeString(v.Trait)
	case AssociatedType:
		if v.Default == nil {
			return "-"
		}
		return typeString(*v.Default)
	case AssociatedConst:
		return typeString(v.Type) + "=" + v.Default
	case Primitive:
		return v.Name
	case ForeignFunction:
		return v.Signature
	case ForeignStatic:
		return typeString(v.Type)
	case nil:
		return "nil"
	}
	panic(fmt.Sprintf("doctree: unhandled payload %T", inner))
}
