package element

import (
	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
)

type member struct {
	owner    *ClassElement
	metadata annotation.Metadata
}

// Owner returns the class declaring the member.
func (m member) Owner() *ClassElement { return m.owner }

// AnnotationMetadata returns the annotations declared on the member.
func (m member) AnnotationMetadata() annotation.Metadata { return m.metadata }

func (m member) typeOf(op, name string, t host.Type) (Element, bool, error) {
	if err := m.owner.context().Err(); err != nil {
		return nil, false, &Error{Op: op, Declaration: name, Err: err}
	}

	return m.owner.factory.Of(t)
}

// FieldElement is a field of a class.
type FieldElement struct {
	member
	decl host.VariableDeclaration
}

func (*FieldElement) isElement() {}

// Name returns the field name.
func (f *FieldElement) Name() string { return f.decl.SimpleName() }

// SimpleName returns the field name.
func (f *FieldElement) SimpleName() string { return f.decl.SimpleName() }

// Native returns the host declaration.
func (f *FieldElement) Native() host.Declaration { return f.decl }

// Type models the field's type. Fields of primitive or otherwise
// unmodelable type report absence.
func (f *FieldElement) Type() (Element, bool, error) {
	return f.typeOf("field type", f.decl.QualifiedName(), f.decl.VariableType())
}

// MethodElement is a method or constructor of a class.
type MethodElement struct {
	member
	decl host.ExecutableDeclaration
}

func (*MethodElement) isElement() {}

// Name returns the method name.
func (m *MethodElement) Name() string { return m.decl.SimpleName() }

// SimpleName returns the method name.
func (m *MethodElement) SimpleName() string { return m.decl.SimpleName() }

// Native returns the host declaration.
func (m *MethodElement) Native() host.Declaration { return m.decl }

// IsConstructor reports whether the member is a constructor.
func (m *MethodElement) IsConstructor() bool {
	return m.decl.Kind() == host.DeclarationKindConstructor
}

// ReturnType models the result type. A method without result yields
// VoidElement.
func (m *MethodElement) ReturnType() (Element, bool, error) {
	return m.typeOf("return type", m.decl.QualifiedName(), m.decl.ReturnType())
}

// Parameters returns the parameters in declaration order.
func (m *MethodElement) Parameters() ([]*ParameterElement, error) {
	ctx := m.owner.context()
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: "parameters", Declaration: m.decl.QualifiedName(), Err: err}
	}

	params := m.decl.Parameters()
	out := make([]*ParameterElement, 0, len(params))
	for _, p := range params {
		md, err := ctx.Annotations().AnnotationMetadata(p)
		if err != nil {
			return nil, &Error{Op: "parameters", Declaration: m.decl.QualifiedName(), Err: err}
		}

		out = append(out, &ParameterElement{
			member: member{owner: m.owner, metadata: md},
			method: m,
			decl:   p,
		})
	}

	return out, nil
}

// ParameterElement is a parameter of a method.
type ParameterElement struct {
	member
	method *MethodElement
	decl   host.VariableDeclaration
}

func (*ParameterElement) isElement() {}

// Name returns the parameter name.
func (p *ParameterElement) Name() string { return p.decl.SimpleName() }

// SimpleName returns the parameter name.
func (p *ParameterElement) SimpleName() string { return p.decl.SimpleName() }

// Native returns the host declaration.
func (p *ParameterElement) Native() host.Declaration { return p.decl }

// Method returns the declaring method.
func (p *ParameterElement) Method() *MethodElement { return p.method }

// Type models the parameter's type.
func (p *ParameterElement) Type() (Element, bool, error) {
	return p.typeOf("parameter type", p.decl.QualifiedName(), p.decl.VariableType())
}
