package classpath

import (
	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
)

type packageDecl struct {
	name string
}

func (p *packageDecl) Kind() host.DeclarationKind { return host.DeclarationKindPackage }
func (p *packageDecl) QualifiedName() string      { return p.name }
func (p *packageDecl) SimpleName() string         { return p.name }

func (p *packageDecl) Enclosing() (host.Declaration, bool) { return nil, false }

type classDecl struct {
	cp          *Classpath
	kind        host.DeclarationKind
	qualified   string
	simple      string
	enclosing   host.Declaration
	typeParams  []*typeParamDecl
	superclass  host.Type
	interfaces  []host.Type
	annotations annotation.Metadata
	members     []host.Declaration
}

func (c *classDecl) Kind() host.DeclarationKind { return c.kind }
func (c *classDecl) QualifiedName() string      { return c.qualified }
func (c *classDecl) SimpleName() string         { return c.simple }

func (c *classDecl) Enclosing() (host.Declaration, bool) {
	return c.enclosing, c.enclosing != nil
}

// DeclaredType returns the raw use of the class.
func (c *classDecl) DeclaredType() host.Type {
	return &declaredType{cp: c.cp, name: c.qualified}
}

func (c *classDecl) Members() []host.Declaration {
	return c.members
}

// supertypes returns the direct supertypes as written in the manifest.
func (c *classDecl) supertypes() []host.Type {
	out := make([]host.Type, 0, len(c.interfaces)+1)
	if c.superclass != nil {
		out = append(out, c.superclass)
	}

	return append(out, c.interfaces...)
}

type typeParamDecl struct {
	owner  *classDecl
	name   string
	bounds []host.Type
}

func (t *typeParamDecl) Kind() host.DeclarationKind { return host.DeclarationKindTypeParameter }
func (t *typeParamDecl) QualifiedName() string      { return t.owner.qualified + "." + t.name }
func (t *typeParamDecl) SimpleName() string         { return t.name }

func (t *typeParamDecl) Enclosing() (host.Declaration, bool) { return t.owner, true }

type fieldDecl struct {
	owner       *classDecl
	kind        host.DeclarationKind
	name        string
	qualified   string
	typ         host.Type
	annotations annotation.Metadata
}

func (f *fieldDecl) Kind() host.DeclarationKind { return f.kind }
func (f *fieldDecl) QualifiedName() string      { return f.qualified }
func (f *fieldDecl) SimpleName() string         { return f.name }
func (f *fieldDecl) VariableType() host.Type    { return f.typ }

func (f *fieldDecl) Enclosing() (host.Declaration, bool) { return f.owner, true }

type methodDecl struct {
	owner       *classDecl
	kind        host.DeclarationKind
	name        string
	returns     host.Type
	params      []host.VariableDeclaration
	annotations annotation.Metadata
}

func (m *methodDecl) Kind() host.DeclarationKind { return m.kind }
func (m *methodDecl) QualifiedName() string      { return m.owner.qualified + "." + m.name }
func (m *methodDecl) SimpleName() string         { return m.name }
func (m *methodDecl) ReturnType() host.Type      { return m.returns }

func (m *methodDecl) Enclosing() (host.Declaration, bool) { return m.owner, true }

func (m *methodDecl) Parameters() []host.VariableDeclaration {
	return m.params
}
