package ast

// GlobalDirective is an `enable NAME;` module-level directive.
type GlobalDirective struct {
	Base SourceSpan
	Name string
}

func (d *GlobalDirective) Span() SourceSpan { return d.Base }

// ShaderModule is the root of the AST: the ordered lists the parser
// appends to in source order. Lookup passes that need
// cross-references (a types.Context, the entry-point gatherer) index
// these lists by name in a separate table rather than mutating the tree.
type ShaderModule struct {
	Base        SourceSpan
	Directives  []*GlobalDirective
	Structures  []*StructureDecl
	Variables   []*VariableDecl
	Functions   []*FunctionDecl
	TypeAliases []*TypeAliasDecl
}

func (m *ShaderModule) Span() SourceSpan { return m.Base }

// FindFunction returns the first function declared with the given name,
// or nil if none exists.
func (m *ShaderModule) FindFunction(name string) *FunctionDecl {
	for _, f := range m.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FindStructure returns the first structure declared with the given
// name, or nil if none exists.
func (m *ShaderModule) FindStructure(name string) *StructureDecl {
	for _, s := range m.Structures {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// EntryPoints returns every function carrying a Stage attribute, in
// declaration order.
func (m *ShaderModule) EntryPoints() []*FunctionDecl {
	var entries []*FunctionDecl
	for _, f := range m.Functions {
		if f.IsEntryPoint() {
			entries = append(entries, f)
		}
	}
	return entries
}
