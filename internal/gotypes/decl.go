package gotypes

import (
	"fmt"
	"go/constant"
	"go/types"

	"inject-visitor/internal/host"
)

type packageDecl struct {
	pkg *types.Package
}

func (p packageDecl) Kind() host.DeclarationKind { return host.DeclarationKindPackage }
func (p packageDecl) QualifiedName() string      { return p.pkg.Path() }
func (p packageDecl) SimpleName() string         { return p.pkg.Name() }

func (p packageDecl) Enclosing() (host.Declaration, bool) { return nil, false }

// typeDecl is a named type. Instantiations share the declaration of their
// origin.
type typeDecl struct {
	u         *Universe
	obj       *types.TypeName
	named     *types.Named
	qualified string
}

func (d *typeDecl) Kind() host.DeclarationKind {
	switch d.named.Underlying().(type) {
	case *types.Struct:
		return host.DeclarationKindClass
	case *types.Interface:
		return host.DeclarationKindInterface
	}

	if d.hasConstants() {
		return host.DeclarationKindEnum
	}

	return host.DeclarationKindClass
}

// hasConstants reports whether the declaring package defines constants of
// the type, the Go spelling of an enum.
func (d *typeDecl) hasConstants() bool {
	if d.obj.Pkg() == nil {
		return false
	}

	scope := d.obj.Pkg().Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && c.Val().Kind() != constant.Unknown && types.Identical(c.Type(), d.named) {
			return true
		}
	}

	return false
}

func (d *typeDecl) QualifiedName() string { return d.qualified }
func (d *typeDecl) SimpleName() string    { return d.obj.Name() }

func (d *typeDecl) Enclosing() (host.Declaration, bool) {
	if fn := d.u.enclosingFunc(d.obj); fn != nil {
		return d.u.funcDecl(fn), true
	}
	if d.obj.Pkg() == nil {
		return nil, false
	}

	return packageDecl{pkg: d.obj.Pkg()}, true
}

// DeclaredType returns the generic origin for generic types.
func (d *typeDecl) DeclaredType() host.Type {
	return d.u.TypeOf(d.named)
}

// Members returns struct fields followed by methods. For interfaces the
// method set, including embedded interfaces, is returned.
func (d *typeDecl) Members() []host.Declaration {
	var members []host.Declaration

	switch u := d.named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			members = append(members, &varDecl{
				u:      d.u,
				v:      u.Field(i),
				kind:   host.DeclarationKindField,
				parent: d,
				tag:    u.Tag(i),
			})
		}
	case *types.Interface:
		for i := 0; i < u.NumMethods(); i++ {
			members = append(members, d.u.funcDecl(u.Method(i)))
		}
		return members
	}

	for i := 0; i < d.named.NumMethods(); i++ {
		members = append(members, d.u.funcDecl(d.named.Method(i)))
	}

	return members
}

// funcDecl is a function or method.
type funcDecl struct {
	u  *Universe
	fn *types.Func
}

func (d *funcDecl) Kind() host.DeclarationKind {
	if sig, ok := d.fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return host.DeclarationKindMethod
	}

	return host.DeclarationKindFunction
}

func (d *funcDecl) QualifiedName() string { return funcQualifiedName(d.fn) }
func (d *funcDecl) SimpleName() string    { return d.fn.Name() }

func (d *funcDecl) Enclosing() (host.Declaration, bool) {
	if sig, ok := d.fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		recv := sig.Recv().Type()
		if p, ok := recv.(*types.Pointer); ok {
			recv = p.Elem()
		}
		if named, ok := types.Unalias(recv).(*types.Named); ok {
			if td, ok := d.u.typeDecl(named.Obj()); ok {
				return td, true
			}
		}
	}
	if d.fn.Pkg() == nil {
		return nil, false
	}

	return packageDecl{pkg: d.fn.Pkg()}, true
}

func (d *funcDecl) ReturnType() host.Type {
	return d.u.resultType(d.fn.Type().(*types.Signature).Results())
}

func (d *funcDecl) Parameters() []host.VariableDeclaration {
	params := d.fn.Type().(*types.Signature).Params()

	out := make([]host.VariableDeclaration, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		out = append(out, &varDecl{
			u:      d.u,
			v:      params.At(i),
			kind:   host.DeclarationKindParameter,
			parent: d,
			index:  i,
		})
	}

	return out
}

// varDecl is a struct field or a parameter.
type varDecl struct {
	u      *Universe
	v      *types.Var
	kind   host.DeclarationKind
	parent host.Declaration
	tag    string
	index  int
}

func (d *varDecl) Kind() host.DeclarationKind { return d.kind }
func (d *varDecl) VariableType() host.Type    { return d.u.TypeOf(d.v.Type()) }

// SimpleName returns the variable name; unnamed parameters are called
// argN after their position.
func (d *varDecl) SimpleName() string {
	if name := d.v.Name(); name != "" && name != "_" {
		return name
	}

	return fmt.Sprintf("arg%d", d.index)
}

func (d *varDecl) QualifiedName() string {
	return d.parent.QualifiedName() + "." + d.SimpleName()
}

func (d *varDecl) Enclosing() (host.Declaration, bool) {
	return d.parent, true
}
