package doctree

// ItemKind indicates the kind of payload an item carries
type ItemKind string

const (
	KindModule          ItemKind = "module"
	KindStruct          ItemKind = "struct"
	KindStructField     ItemKind = "structField"
	KindEnum            ItemKind = "enum"
	KindVariant         ItemKind = "variant"
	KindTrait           ItemKind = "trait"
	KindTyMethod        ItemKind = "tyMethod" // method declaration on a trait
	KindMethod          ItemKind = "method"   // method implementation
	KindFunction        ItemKind = "function"
	KindStatic          ItemKind = "static"
	KindConstant        ItemKind = "constant"
	KindTypedef         ItemKind = "typedef"
	KindMacro           ItemKind = "macro"
	KindExternCrate     ItemKind = "externCrate"
	KindImport          ItemKind = "import"
	KindImpl            ItemKind = "impl"
	KindDefaultImpl     ItemKind = "defaultImpl"
	KindAssociatedType  ItemKind = "associatedType"
	KindAssociatedConst ItemKind = "associatedConst"
	KindPrimitive       ItemKind = "primitive"
	KindForeignFunction ItemKind = "foreignFunction"
	KindForeignStatic   ItemKind = "foreignStatic"
)

// Kinds lists every item kind
var Kinds = []ItemKind{
	KindModule, KindStruct, KindStructField, KindEnum, KindVariant, KindTrait,
	KindTyMethod, KindMethod, KindFunction, KindStatic, KindConstant, KindTypedef,
	KindMacro, KindExternCrate, KindImport, KindImpl, KindDefaultImpl,
	KindAssociatedType, KindAssociatedConst, KindPrimitive, KindForeignFunction,
	KindForeignStatic,
}

// Inner is the closed set of item payloads.
// Switches over Inner must list every payload type below.
type Inner interface {
	Kind() ItemKind
	inner()
}

// Type is a reference to a type, resolved to its definition when known
type Type struct {
	Path  string
	DefID *DefID
}

// Resolved creates a type reference resolved to a definition
func Resolved(path string, id DefID) Type {
	return Type{Path: path, DefID: &id}
}

// Unresolved creates a type reference without a definition
func Unresolved(path string) Type {
	return Type{Path: path}
}

// Resolution returns the definition the type resolves to
func (t Type) Resolution() (DefID, bool) {
	if t.DefID == nil {
		return DefID{}, false
	}
	return *t.DefID, true
}

// VariantKind represents enum variant shape
type VariantKind uint8

const (
	CLikeVariant  VariantKind = iota // Name
	TupleVariant                     // Name(T, U)
	StructVariant                    // Name { field: T }
)

// Module represents a module with nested items
type Module struct {
	Items   []Item
	IsCrate bool // root module of the crate
}

// Struct represents a struct type
type Struct struct {
	Fields         []Item
	FieldsStripped bool // some fields were removed from the documentation
}

// StructField represents a struct field; a hidden field keeps the slot but not the content
type StructField struct {
	Type   Type
	Hidden bool
}

// Enum represents an enum type
type Enum struct {
	Variants         []Item
	VariantsStripped bool
}

// Variant represents an enum variant
type Variant struct {
	Shape          VariantKind
	Types          []Type // tuple variant members
	Fields         []Item // struct variant fields
	FieldsStripped bool
}

// Trait represents a trait (interface)
type Trait struct {
	Items []Item
}

// TyMethod represents a required method declared on a trait
type TyMethod struct {
	Signature string
}

// Method represents a method implementation
type Method struct {
	Signature string
}

// Function represents a free function
type Function struct {
	Signature string
}

// Static represents a static (variable)
type Static struct {
	Type Type
	Expr string
}

// Constant represents a constant
type Constant struct {
	Type Type
	Expr string
}

// Typedef represents a type definition or alias
type Typedef struct {
	Type Type
}

// Macro represents a macro definition
type Macro struct {
	Source string
}

// ExternCrate represents a reference to an external crate
type ExternCrate struct {
	Crate string
}

// Import represents an import (use) declaration
type Import struct {
	Path string
}

// Impl represents an implementation block; Trait is nil for inherent impls
type Impl struct {
	For   Type
	Trait *Type
	Items []Item
}

// DefaultImpl represents a default trait implementation
type DefaultImpl struct {
	Trait Type
}

// AssociatedType represents an associated type
type AssociatedType struct {
	Default *Type
}

// AssociatedConst represents an associated constant
type AssociatedConst struct {
	Type    Type
	Default string
}

// Primitive represents a primitive type page
type Primitive struct {
	Name string
}

// ForeignFunction represents a function declared in a foreign block
type ForeignFunction struct {
	Signature string
}

// ForeignStatic represents a static declared in a foreign block
type ForeignStatic struct {
	Type Type
}

func (Module) Kind() ItemKind          { return KindModule }
func (Struct) Kind() ItemKind          { return KindStruct }
func (StructField) Kind() ItemKind     { return KindStructField }
func (Enum) Kind() ItemKind            { return KindEnum }
func (Variant) Kind() ItemKind         { return KindVariant }
func (Trait) Kind() ItemKind           { return KindTrait }
func (TyMethod) Kind() ItemKind        { return KindTyMethod }
func (Method) Kind() ItemKind          { return KindMethod }
func (Function) Kind() ItemKind        { return KindFunction }
func (Static) Kind() ItemKind          { return KindStatic }
func (Constant) Kind() ItemKind        { return KindConstant }
func (Typedef) Kind() ItemKind         { return KindTypedef }
func (Macro) Kind() ItemKind           { return KindMacro }
func (ExternCrate) Kind() ItemKind     { return KindExternCrate }
func (Import) Kind() ItemKind          { return KindImport }
func (Impl) Kind() ItemKind            { return KindImpl }
func (DefaultImpl) Kind() ItemKind     { return KindDefaultImpl }
func (AssociatedType) Kind() ItemKind  { return KindAssociatedType }
func (AssociatedConst) Kind() ItemKind { return KindAssociatedConst }
func (Primitive) Kind() ItemKind       { return KindPrimitive }
func (ForeignFunction) Kind() ItemKind { return KindForeignFunction }
func (ForeignStatic) Kind() ItemKind   { return KindForeignStatic }

func (Module) inner()          {}
func (Struct) inner()          {}
func (StructField) inner()     {}
func (Enum) inner()            {}
func (Variant) inner()         {}
func (Trait) inner()           {}
func (TyMethod) inner()        {}
func (Method) inner()          {}
func (Function) inner()        {}
func (Static) inner()          {}
func (Constant) inner()        {}
func (Typedef) inner()         {}
func (Macro) inner()           {}
func (ExternCrate) inner()     {}
func (Import) inner()          {}
func (Impl) inner()            {}
func (DefaultImpl) inner()     {}
func (AssociatedType) inner()  {}
func (AssociatedConst) inner() {}
func (Primitive) inner()       {}
func (ForeignFunction) inner() {}
func (ForeignStatic) inner()   {}
