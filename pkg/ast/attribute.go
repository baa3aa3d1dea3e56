package ast

// AttributeKind discriminates the closed set of attribute variants.
type AttributeKind int

const (
	AttributeBinding AttributeKind = iota
	AttributeGroup
	AttributeLocation
	AttributeBuiltin
	AttributeStage
	AttributeNative
)

func (k AttributeKind) String() string {
	switch k {
	case AttributeBinding:
		return "Binding"
	case AttributeGroup:
		return "Group"
	case AttributeLocation:
		return "Location"
	case AttributeBuiltin:
		return "Builtin"
	case AttributeStage:
		return "Stage"
	case AttributeNative:
		return "Native"
	default:
		return "Unknown"
	}
}

// Stage is one of the three pipeline stages an entry point can target.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Attribute is the interface implemented by every @-attribute node.
type Attribute interface {
	Node
	AttributeKind() AttributeKind
}

// BindingAttribute is `@binding(N)`.
type BindingAttribute struct {
	Base    SourceSpan
	Binding uint32
}

func (a *BindingAttribute) Span() SourceSpan            { return a.Base }
func (a *BindingAttribute) AttributeKind() AttributeKind { return AttributeBinding }

// GroupAttribute is `@group(N)`.
type GroupAttribute struct {
	Base  SourceSpan
	Group uint32
}

func (a *GroupAttribute) Span() SourceSpan            { return a.Base }
func (a *GroupAttribute) AttributeKind() AttributeKind { return AttributeGroup }

// LocationAttribute is `@location(N)`.
type LocationAttribute struct {
	Base     SourceSpan
	Location uint32
}

func (a *LocationAttribute) Span() SourceSpan            { return a.Base }
func (a *LocationAttribute) AttributeKind() AttributeKind { return AttributeLocation }

// BuiltinAttribute is `@builtin(name)`. The name is stored verbatim and
// not validated against the WGSL builtin enum.
type BuiltinAttribute struct {
	Base SourceSpan
	Name string
}

func (a *BuiltinAttribute) Span() SourceSpan            { return a.Base }
func (a *BuiltinAttribute) AttributeKind() AttributeKind { return AttributeBuiltin }

// StageAttribute is one of the bare `@vertex`/`@fragment`/`@compute`.
type StageAttribute struct {
	Base  SourceSpan
	Stage Stage
}

func (a *StageAttribute) Span() SourceSpan            { return a.Base }
func (a *StageAttribute) AttributeKind() AttributeKind { return AttributeStage }

// NativeAttribute marks a declaration as a compiler-internal built-in. The
// parser never produces it, and nothing else in this module creates one.
type NativeAttribute struct {
	Base SourceSpan
}

func (a *NativeAttribute) Span() SourceSpan            { return a.Base }
func (a *NativeAttribute) AttributeKind() AttributeKind { return AttributeNative }

// IsSemantic reports whether an attribute can serve as an entry-point
// item's semantic: builtin(...) or location(...).
func IsSemantic(a Attribute) bool {
	switch a.AttributeKind() {
	case AttributeBuiltin, AttributeLocation:
		return true
	default:
		return false
	}
}

// FirstSemantic returns the first Builtin or Location attribute in attrs,
// or nil if none is present.
func FirstSemantic(attrs []Attribute) Attribute {
	for _, a := range attrs {
		if IsSemantic(a) {
			return a
		}
	}
	return nil
}
