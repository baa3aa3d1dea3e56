package ast

// TypeRefKind discriminates the closed set of type-reference syntaxes.
type TypeRefKind int

const (
	TypeRefArray TypeRefKind = iota
	TypeRefNamed
	TypeRefParameterized
)

func (k TypeRefKind) String() string {
	switch k {
	case TypeRefArray:
		return "Array"
	case TypeRefNamed:
		return "Named"
	case TypeRefParameterized:
		return "Parameterized"
	default:
		return "Unknown"
	}
}

// TypeRef is the interface implemented by every type-reference node.
type TypeRef interface {
	Node
	TypeRefKind() TypeRefKind
}

// ArrayTypeRef is `array` or `array<elem>` or `array<elem, count>`.
// Element and Count are both optional in the grammar used by constructor
// contexts (array(...)). The parser also accepts a bare `array` in a type
// position, and no pass in this module rejects it there.
type ArrayTypeRef struct {
	Base    SourceSpan
	Element TypeRef    // nil if omitted
	Count   Expression // nil if omitted
}

func (t *ArrayTypeRef) Span() SourceSpan        { return t.Base }
func (t *ArrayTypeRef) TypeRefKind() TypeRefKind { return TypeRefArray }

// NamedTypeRef is a bare identifier type: a primitive (i32, u32, f32,
// bool) or a user struct/alias name.
type NamedTypeRef struct {
	Base SourceSpan
	Name string
}

func (t *NamedTypeRef) Span() SourceSpan        { return t.Base }
func (t *NamedTypeRef) TypeRefKind() TypeRefKind { return TypeRefNamed }
func (t *NamedTypeRef) String() string           { return t.Name }

// ParameterizedBase is one of the 12 vector/matrix type constructors.
type ParameterizedBase int

const (
	BaseVec2 ParameterizedBase = iota
	BaseVec3
	BaseVec4
	BaseMat2x2
	BaseMat2x3
	BaseMat2x4
	BaseMat3x2
	BaseMat3x3
	BaseMat3x4
	BaseMat4x2
	BaseMat4x3
	BaseMat4x4
)

var parameterizedBaseNames = [...]string{
	BaseVec2:   "vec2",
	BaseVec3:   "vec3",
	BaseVec4:   "vec4",
	BaseMat2x2: "mat2x2",
	BaseMat2x3: "mat2x3",
	BaseMat2x4: "mat2x4",
	BaseMat3x2: "mat3x2",
	BaseMat3x3: "mat3x3",
	BaseMat3x4: "mat3x4",
	BaseMat4x2: "mat4x2",
	BaseMat4x3: "mat4x3",
	BaseMat4x4: "mat4x4",
}

// String returns the lower-case WGSL-faithful spelling, e.g. "vec3".
func (b ParameterizedBase) String() string {
	if int(b) < 0 || int(b) >= len(parameterizedBaseNames) {
		return "unknown"
	}
	return parameterizedBaseNames[b]
}

// ParameterizedBaseFromName resolves an identifier to one of the 12
// parameterized bases. Used by the parser to decide whether `ident '<'`
// begins a constructor type or should fall through to the (currently
// rejected) comparison-operator grammar.
func ParameterizedBaseFromName(name string) (ParameterizedBase, bool) {
	for i, n := range parameterizedBaseNames {
		if n == name {
			return ParameterizedBase(i), true
		}
	}
	return 0, false
}

// ParameterizedTypeRef is `vec2<f32>`, `mat3x4<f32>`, etc.
type ParameterizedTypeRef struct {
	Base       SourceSpan
	BaseType   ParameterizedBase
	Element    TypeRef
}

func (t *ParameterizedTypeRef) Span() SourceSpan        { return t.Base }
func (t *ParameterizedTypeRef) TypeRefKind() TypeRefKind { return TypeRefParameterized }

// String renders the canonical "base<element>" form used both as the
// WGSL-faithful dump output and as the types.Context lookup key.
func (t *ParameterizedTypeRef) String() string {
	elem := "?"
	if named, ok := t.Element.(*NamedTypeRef); ok {
		elem = named.Name
	} else if param, ok := t.Element.(*ParameterizedTypeRef); ok {
		elem = param.String()
	}
	return t.BaseType.String() + "<" + elem + ">"
}
