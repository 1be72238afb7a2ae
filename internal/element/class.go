package element

import (
	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
	"inject-visitor/internal/visitor"
)

// ClassElement is a declared class-like type. Names and the nesting flag are
// read once from the declaration when the element is built.
type ClassElement struct {
	factory    *Factory
	native     host.Type
	decl       host.TypeDeclaration
	metadata   annotation.Metadata
	name       string
	simpleName string
	inner      bool
}

func (*ClassElement) isElement() {}

// Name returns the qualified name reported by the host.
func (c *ClassElement) Name() string { return c.name }

// SimpleName returns the last name segment as computed by the host.
func (c *ClassElement) SimpleName() string { return c.simpleName }

func (c *ClassElement) String() string { return c.name }

// IsInnerClass reports whether the class is declared inside another
// class-like declaration rather than at package or file level.
func (c *ClassElement) IsInnerClass() bool { return c.inner }

// IsInterface reports whether the declaration is an interface or annotation type.
func (c *ClassElement) IsInterface() bool { return c.decl.Kind().IsInterface() }

// Kind returns the declaration kind.
func (c *ClassElement) Kind() host.DeclarationKind { return c.decl.Kind() }

// AnnotationMetadata returns the annotations declared on the class.
func (c *ClassElement) AnnotationMetadata() annotation.Metadata { return c.metadata }

// Native returns the host declaration.
func (c *ClassElement) Native() host.Declaration { return c.decl }

// Type returns the raw handle the element was built from. For a
// parameterized use this still carries its type arguments.
func (c *ClassElement) Type() host.Type { return c.native }

// IsAssignable reports whether a value of this class's type can be used where
// the named type is expected. Both sides are erased before the host's
// assignability relation is consulted. A target name that does not resolve
// yields false, not an error.
func (c *ClassElement) IsAssignable(target string) (bool, error) {
	ctx := c.context()
	if err := ctx.Err(); err != nil {
		return false, c.fail("assignable", err)
	}

	other, ok, err := ctx.Elements().TypeDeclaration(target)
	if err != nil {
		return false, c.fail("assignable", err)
	}
	if !ok {
		ctx.Logger().Debugf("%s is not assignable to unknown type %s", c.name, target)
		return false, nil
	}

	return c.assignable(other.DeclaredType())
}

// IsAssignableTo is IsAssignable against an element already modelled.
func (c *ClassElement) IsAssignableTo(other *ClassElement) (bool, error) {
	if err := c.context().Err(); err != nil {
		return false, c.fail("assignable", err)
	}

	return c.assignable(other.decl.DeclaredType())
}

func (c *ClassElement) assignable(target host.Type) (bool, error) {
	types := c.context().Types()

	from, err := types.Erasure(c.decl.DeclaredType())
	if err != nil {
		return false, c.fail("erasure", err)
	}

	to, err := types.Erasure(target)
	if err != nil {
		return false, c.fail("erasure", err)
	}

	ok, err := types.IsAssignable(from, to)
	if err != nil {
		return false, c.fail("assignable", err)
	}

	return ok, nil
}

// Generics returns the generic type arguments as resolved by the factory's
// GenericsResolver. With the default NoGenerics resolver this is always
// empty, even for generic declarations.
func (c *ClassElement) Generics() ([]Element, error) {
	if err := c.context().Err(); err != nil {
		return nil, c.fail("generics", err)
	}

	return c.factory.generics.Generics(c.factory, c)
}

// Fields returns the fields of the class in declaration order.
func (c *ClassElement) Fields() ([]*FieldElement, error) {
	if err := c.context().Err(); err != nil {
		return nil, c.fail("fields", err)
	}

	var fields []*FieldElement
	for _, m := range c.decl.Members() {
		v, ok := m.(host.VariableDeclaration)
		if !ok || m.Kind() != host.DeclarationKindField {
			continue
		}

		md, err := c.context().Annotations().AnnotationMetadata(m)
		if err != nil {
			return nil, c.fail("fields", err)
		}

		fields = append(fields, &FieldElement{
			member: member{owner: c, metadata: md},
			decl:   v,
		})
	}

	return fields, nil
}

// Methods returns the methods and constructors of the class in declaration
// order.
func (c *ClassElement) Methods() ([]*MethodElement, error) {
	if err := c.context().Err(); err != nil {
		return nil, c.fail("methods", err)
	}

	var methods []*MethodElement
	for _, m := range c.decl.Members() {
		e, ok := m.(host.ExecutableDeclaration)
		if !ok || !m.Kind().IsExecutable() {
			continue
		}

		md, err := c.context().Annotations().AnnotationMetadata(m)
		if err != nil {
			return nil, c.fail("methods", err)
		}

		methods = append(methods, &MethodElement{
			member: member{owner: c, metadata: md},
			decl:   e,
		})
	}

	return methods, nil
}

func (c *ClassElement) context() *visitor.Context {
	return c.factory.ctx
}

func (c *ClassElement) fail(op string, err error) error {
	return &Error{Op: op, Declaration: c.name, Err: err}
}
