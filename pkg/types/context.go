// Package types implements the name-to-type-node lookup table the
// entry-point gatherer consults to resolve every NamedTypeRef and
// ParameterizedTypeRef it encounters.
package types

import "github.com/th13vn/wgslfront/pkg/ast"

// Node is a resolved type: the result of looking a type reference's
// canonical name up in a Context. Scalars and parameterized bases
// resolve to a synthesized ast.NativeTypeDecl; structs and aliases
// resolve to the user's own declaration, kept by reference rather than
// copied, since a Context is a lookup index and not an owner: the
// ShaderModule stays the tree's only owner.
type Node struct {
	Name string
	Decl ast.Declaration
}

// Context is seeded with the four scalar primitives and extended with
// user struct and alias declarations as a module is processed. Entries
// for parameterized names ("vec3<f32>", "mat4x4<u32>", ...) are resolved
// and cached lazily on first Lookup rather than pre-seeded: the 12
// bases times 4 element scalars would otherwise mean synthesizing 48
// entries up front for combinations most shaders never reference.
type Context struct {
	entries map[string]*Node
}

// NewContext seeds a Context with i32, u32, f32, and bool.
func NewContext() *Context {
	ctx := &Context{entries: make(map[string]*Node)}
	for _, name := range []string{"i32", "u32", "f32", "bool"} {
		ctx.entries[name] = &Node{Name: name, Decl: &ast.NativeTypeDecl{Name: name}}
	}
	return ctx
}

// AddStruct registers a user struct declaration under its name.
func (c *Context) AddStruct(decl *ast.StructureDecl) {
	c.entries[decl.Name] = &Node{Name: decl.Name, Decl: decl}
}

// AddAlias registers a user type alias under its name.
func (c *Context) AddAlias(decl *ast.TypeAliasDecl) {
	c.entries[decl.Name] = &Node{Name: decl.Name, Decl: decl}
}

// AddModule registers every struct and alias module declares, the way a
// caller extends a Context before running the gatherer over the
// module's entry points.
func (c *Context) AddModule(module *ast.ShaderModule) {
	for _, s := range module.Structures {
		c.AddStruct(s)
	}
	for _, a := range module.TypeAliases {
		c.AddAlias(a)
	}
}

// Lookup resolves name to its Node, synthesizing and caching a
// parameterized-type entry ("vec3<f32>") on first use.
func (c *Context) Lookup(name string) (*Node, bool) {
	if n, ok := c.entries[name]; ok {
		return n, true
	}
	if n, ok := c.synthesizeParameterized(name); ok {
		c.entries[name] = n
		return n, true
	}
	return nil, false
}

func (c *Context) synthesizeParameterized(name string) (*Node, bool) {
	base, elem, ok := splitParameterized(name)
	if !ok {
		return nil, false
	}
	if _, isBase := ast.ParameterizedBaseFromName(base); !isBase {
		return nil, false
	}
	if _, ok := c.Lookup(elem); !ok {
		return nil, false
	}
	return &Node{Name: name, Decl: &ast.NativeTypeDecl{Name: name}}, true
}

// splitParameterized parses "base<elem>" into its two parts.
func splitParameterized(name string) (base, elem string, ok bool) {
	if len(name) == 0 || name[len(name)-1] != '>' {
		return "", "", false
	}
	lt := -1
	for i := 0; i < len(name); i++ {
		if name[i] == '<' {
			lt = i
			break
		}
	}
	if lt < 0 {
		return "", "", false
	}
	return name[:lt], name[lt+1 : len(name)-1], true
}
