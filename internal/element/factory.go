package element

import (
	"inject-visitor/internal/host"
	"inject-visitor/internal/visitor"
)

// Factory classifies raw type handles and builds elements bound to one
// visitor.Context.
type Factory struct {
	ctx      *visitor.Context
	generics GenericsResolver
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithGenerics selects the generics resolver. NoGenerics is the default.
func WithGenerics(r GenericsResolver) FactoryOption {
	return func(f *Factory) {
		f.generics = r
	}
}

// NewFactory creates a factory for the session ctx.
func NewFactory(ctx *visitor.Context, opts ...FactoryOption) *Factory {
	f := &Factory{
		ctx:      ctx,
		generics: NoGenerics{},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Context returns the session the factory builds elements for.
func (f *Factory) Context() *visitor.Context {
	return f.ctx
}

// Of maps a raw type handle to an element. The boolean is false when the
// handle cannot be modelled (primitives, arrays, wildcards, unresolvable
// symbols, declarations that are not class-like); that is not an error.
// Errors are reserved for host failures and closed sessions.
func (f *Factory) Of(t host.Type) (Element, bool, error) {
	if err := f.ctx.Err(); err != nil {
		return nil, false, &Error{Op: "model", Declaration: typeString(t), Err: err}
	}
	if t == nil {
		return nil, false, nil
	}

	switch t.Kind() {
	case host.TypeKindNone:
		return VoidElement{}, true, nil

	case host.TypeKindDeclared:
		dt, ok := t.(host.DeclaredType)
		if !ok {
			return f.absent(t, "declared handle without declaration")
		}

		decl, ok := dt.Declaration()
		if !ok {
			return f.absent(t, "unresolvable symbol")
		}

		td, ok := decl.(host.TypeDeclaration)
		if !ok || !decl.Kind().IsClassLike() {
			return f.absent(t, decl.Kind().String())
		}

		c, err := f.newClassElement(t, td)
		if err != nil {
			return nil, false, err
		}

		return c, true, nil

	default:
		return f.absent(t, t.Kind().String())
	}
}

// ClassElement looks up a type declaration by qualified name and models it.
// An unknown name is reported as absence.
func (f *Factory) ClassElement(qualifiedName string) (*ClassElement, bool, error) {
	if err := f.ctx.Err(); err != nil {
		return nil, false, &Error{Op: "lookup", Declaration: qualifiedName, Err: err}
	}

	td, ok, err := f.ctx.Elements().TypeDeclaration(qualifiedName)
	if err != nil {
		return nil, false, &Error{Op: "lookup", Declaration: qualifiedName, Err: err}
	}
	if !ok {
		f.ctx.Logger().Debugf("no declaration named %s", qualifiedName)
		return nil, false, nil
	}

	el, ok, err := f.Of(td.DeclaredType())
	if err != nil || !ok {
		return nil, ok, err
	}

	c, ok := el.(*ClassElement)

	return c, ok, nil
}

func (f *Factory) absent(t host.Type, reason string) (Element, bool, error) {
	f.ctx.Logger().Debugf("no element for %s: %s", t, reason)
	return nil, false, nil
}

func (f *Factory) newClassElement(t host.Type, td host.TypeDeclaration) (*ClassElement, error) {
	md, err := f.ctx.Annotations().AnnotationMetadata(td)
	if err != nil {
		return nil, &Error{Op: "annotations", Declaration: td.QualifiedName(), Err: err}
	}

	inner := false
	if enclosing, ok := td.Enclosing(); ok && enclosing != nil {
		inner = enclosing.Kind().IsClassLike()
	}

	return &ClassElement{
		factory:    f,
		native:     t,
		decl:       td,
		metadata:   md,
		name:       td.QualifiedName(),
		simpleName: td.SimpleName(),
		inner:      inner,
	}, nil
}
