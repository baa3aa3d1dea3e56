package ast

// DeclarationKind discriminates the closed set of declaration variants.
type DeclarationKind int

const (
	DeclarationFunction DeclarationKind = iota
	DeclarationStructure
	DeclarationVariable
	DeclarationTypeAlias
	DeclarationNativeType
)

func (k DeclarationKind) String() string {
	switch k {
	case DeclarationFunction:
		return "Function"
	case DeclarationStructure:
		return "Structure"
	case DeclarationVariable:
		return "Variable"
	case DeclarationTypeAlias:
		return "TypeAlias"
	case DeclarationNativeType:
		return "NativeType"
	default:
		return "Unknown"
	}
}

// Declaration is the interface implemented by every top-level or
// native-synthesized declaration node.
type Declaration interface {
	Node
	DeclarationKind() DeclarationKind
}

// StorageClass is the closed set of `var<...>` storage classes.
type StorageClass int

const (
	StorageClassFunction StorageClass = iota
	StorageClassPrivate
	StorageClassWorkgroup
	StorageClassUniform
	StorageClassStorage
)

func (c StorageClass) String() string {
	switch c {
	case StorageClassFunction:
		return "function"
	case StorageClassPrivate:
		return "private"
	case StorageClassWorkgroup:
		return "workgroup"
	case StorageClassUniform:
		return "uniform"
	case StorageClassStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// AccessMode is the closed set of access modes; Read is the default when
// a `var<storage-class>` omits the second qualifier argument.
type AccessMode int

const (
	AccessModeRead AccessMode = iota
	AccessModeWrite
	AccessModeReadWrite
)

func (m AccessMode) String() string {
	switch m {
	case AccessModeRead:
		return "read"
	case AccessModeWrite:
		return "write"
	case AccessModeReadWrite:
		return "read_write"
	default:
		return "unknown"
	}
}

// VariableQualifier is the `<storage-class, access-mode>` annotation on a
// `var` declaration.
type VariableQualifier struct {
	StorageClass StorageClass
	AccessMode   AccessMode
}

// Parameter is one entry in a FunctionDecl's parameter list.
type Parameter struct {
	Base       SourceSpan
	Name       string
	Attributes []Attribute
	Type       TypeRef
}

func (p *Parameter) Span() SourceSpan { return p.Base }

// Semantic returns the first Builtin or Location attribute attached to
// the parameter, or nil if it has none.
func (p *Parameter) Semantic() Attribute {
	return FirstSemantic(p.Attributes)
}

// FunctionDecl is a `fn name(...) -> type { ... }` declaration.
type FunctionDecl struct {
	Base             SourceSpan
	Name             string
	Attributes       []Attribute
	Parameters       []*Parameter
	ReturnAttributes []Attribute
	ReturnType       TypeRef // nil if the function returns nothing
	Body             *CompoundStatement
}

func (d *FunctionDecl) Span() SourceSpan                { return d.Base }
func (d *FunctionDecl) DeclarationKind() DeclarationKind { return DeclarationFunction }

// MaybeStage returns the function's Stage attribute, or nil if it is not
// an entry point.
func (d *FunctionDecl) MaybeStage() *StageAttribute {
	for _, a := range d.Attributes {
		if s, ok := a.(*StageAttribute); ok {
			return s
		}
	}
	return nil
}

// IsEntryPoint reports whether the function carries a Stage attribute
// and is therefore usable as a pipeline start.
func (d *FunctionDecl) IsEntryPoint() bool {
	return d.MaybeStage() != nil
}

// MaybeReturnSemantic returns the first semantic attribute among the
// function's return attributes, or nil.
func (d *FunctionDecl) MaybeReturnSemantic() Attribute {
	return FirstSemantic(d.ReturnAttributes)
}

// StructMember is one field of a StructureDecl.
type StructMember struct {
	Base       SourceSpan
	Name       string
	Type       TypeRef
	Attributes []Attribute
}

func (m *StructMember) Span() SourceSpan { return m.Base }

// Semantic returns the first Builtin or Location attribute attached to
// the member, or nil if it has none. The entry-point gatherer resolves a
// struct-typed parameter as a whole and does not recurse into its
// members, so it does not consult member semantics.
func (m *StructMember) Semantic() Attribute {
	return FirstSemantic(m.Attributes)
}

// StructureDecl is a `struct name { ... }` declaration.
type StructureDecl struct {
	Base       SourceSpan
	Name       string
	Attributes []Attribute
	Members    []*StructMember
}

func (d *StructureDecl) Span() SourceSpan                { return d.Base }
func (d *StructureDecl) DeclarationKind() DeclarationKind { return DeclarationStructure }

// VariableDecl is a `var<...> name: type = init;` declaration, either at
// module scope or as a VariableStatement inside a function body.
type VariableDecl struct {
	Base        SourceSpan
	Name        string
	Qualifier   *VariableQualifier // nil if no `<...>` qualifier was given
	Type        TypeRef            // nil if elided, left to a later pass to reject
	Initializer Expression         // nil if no initializer
	Attributes  []Attribute
}

func (d *VariableDecl) Span() SourceSpan                { return d.Base }
func (d *VariableDecl) DeclarationKind() DeclarationKind { return DeclarationVariable }

// TypeAliasDecl is a `type name = type;` declaration.
type TypeAliasDecl struct {
	Base SourceSpan
	Name string
	Type TypeRef
}

func (d *TypeAliasDecl) Span() SourceSpan                { return d.Base }
func (d *TypeAliasDecl) DeclarationKind() DeclarationKind { return DeclarationTypeAlias }

// NativeTypeDecl represents a compiler built-in type: a scalar, or a
// parameterized name such as "vec3<f32>". It is never produced by the
// parser; a types.Context creates one per scalar when it is constructed
// and one per parameterized name the first time that name is looked up.
type NativeTypeDecl struct {
	Base SourceSpan
	Name string
}

func (d *NativeTypeDecl) Span() SourceSpan                { return d.Base }
func (d *NativeTypeDecl) DeclarationKind() DeclarationKind { return DeclarationNativeType }
