package classpath

import (
	"strings"

	"inject-visitor/internal/host"
)

// ObjectName is the root of every class hierarchy. A Classpath always
// declares it.
const ObjectName = "java.lang.Object"

var primitives = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
}

type noType struct{}

func (noType) Kind() host.TypeKind { return host.TypeKindNone }
func (noType) String() string      { return "void" }

type primitiveType struct {
	name string
}

func (p *primitiveType) Kind() host.TypeKind { return host.TypeKindPrimitive }
func (p *primitiveType) String() string      { return p.name }

// declaredType refers to a class by name. The declaration is looked up on
// demand so references may point at classes declared later or not at all.
type declaredType struct {
	cp   *Classpath
	name string
	args []host.Type
}

func (d *declaredType) Kind() host.TypeKind { return host.TypeKindDeclared }

func (d *declaredType) String() string {
	if len(d.args) == 0 {
		return d.name
	}

	args := make([]string, len(d.args))
	for i, a := range d.args {
		args[i] = a.String()
	}

	return d.name + "<" + strings.Join(args, ", ") + ">"
}

// Declaration implements host.DeclaredType.
func (d *declaredType) Declaration() (host.Declaration, bool) {
	c, ok := d.cp.classes[d.name]
	if !ok {
		return nil, false
	}

	return c, true
}

func (d *declaredType) class() (*classDecl, bool) {
	c, ok := d.cp.classes[d.name]
	return c, ok
}

type arrayType struct {
	elem host.Type
}

func (a *arrayType) Kind() host.TypeKind { return host.TypeKindArray }
func (a *arrayType) String() string      { return a.elem.String() + "[]" }

type typeVariable struct {
	param *typeParamDecl
}

func (v *typeVariable) Kind() host.TypeKind { return host.TypeKindTypeVariable }
func (v *typeVariable) String() string      { return v.param.name }

type wildcardType struct {
	bound   host.Type // nil for an unbounded wildcard
	superOf bool
}

func (w *wildcardType) Kind() host.TypeKind { return host.TypeKindWildcard }

func (w *wildcardType) String() string {
	switch {
	case w.bound == nil:
		return "?"
	case w.superOf:
		return "? super " + w.bound.String()
	default:
		return "? extends " + w.bound.String()
	}
}

// sameType reports structural identity of two handles.
func sameType(a, b host.Type) bool {
	switch a := a.(type) {
	case noType:
		_, ok := b.(noType)
		return ok
	case *primitiveType:
		b, ok := b.(*primitiveType)
		return ok && a.name == b.name
	case *declaredType:
		b, ok := b.(*declaredType)
		if !ok || a.name != b.name || len(a.args) != len(b.args) {
			return false
		}
		for i := range a.args {
			if !sameType(a.args[i], b.args[i]) {
				return false
			}
		}
		return true
	case *arrayType:
		b, ok := b.(*arrayType)
		return ok && sameType(a.elem, b.elem)
	case *typeVariable:
		b, ok := b.(*typeVariable)
		return ok && a.param == b.param
	case *wildcardType:
		b, ok := b.(*wildcardType)
		if !ok || a.superOf != b.superOf {
			return false
		}
		if a.bound == nil || b.bound == nil {
			return a.bound == nil && b.bound == nil
		}
		return sameType(a.bound, b.bound)
	default:
		return false
	}
}
