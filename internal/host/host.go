package host

import (
	"errors"

	"inject-visitor/internal/annotation"
)

// ErrInconsistent is wrapped by frontends when their own state cannot answer
// a query, e.g. a cyclic type hierarchy. Callers must not treat it as a
// negative answer.
var ErrInconsistent = errors.New("host: inconsistent compiler state")

// Type is an opaque handle to a type the frontend has already resolved.
type Type interface {
	Kind() TypeKind
	String() string
}

// DeclaredType is a nominal type handle.
type DeclaredType interface {
	Type
	// Declaration returns the symbol behind the type. The boolean is false
	// when the frontend could not resolve the symbol.
	Declaration() (Declaration, bool)
}

// Declaration is a declared symbol: a type, member, parameter or scope.
type Declaration interface {
	Kind() DeclarationKind
	QualifiedName() string
	SimpleName() string
	// Enclosing returns the lexically enclosing declaration, if any.
	Enclosing() (Declaration, bool)
}

// TypeDeclaration declares a class-like type.
type TypeDeclaration interface {
	Declaration
	// DeclaredType is the type the declaration defines, without type
	// arguments applied.
	DeclaredType() Type
	// Members returns fields, methods and constructors in declaration order.
	Members() []Declaration
}

// VariableDeclaration declares a field or parameter.
type VariableDeclaration interface {
	Declaration
	VariableType() Type
}

// ExecutableDeclaration declares a method, constructor or function.
type ExecutableDeclaration interface {
	Declaration
	// ReturnType is a TypeKindNone handle when nothing is returned.
	ReturnType() Type
	Parameters() []VariableDeclaration
}

// Elements resolves declarations by name.
type Elements interface {
	// TypeDeclaration looks up a type declaration by qualified name. The
	// boolean is false when no such declaration is visible; a non-nil error
	// means the lookup itself failed.
	TypeDeclaration(qualifiedName string) (TypeDeclaration, bool, error)
}

// Types answers relationship queries between type handles.
type Types interface {
	Erasure(t Type) (Type, error)
	IsAssignable(from, to Type) (bool, error)
	// TypeArguments returns the actual type arguments of a parameterized
	// type in declaration order, or none for raw and non-generic types.
	TypeArguments(t Type) ([]Type, error)
}

// AnnotationResolver reads the annotations declared on a declaration.
// A declaration without annotations yields empty metadata and no error.
type AnnotationResolver interface {
	AnnotationMetadata(d Declaration) (annotation.Metadata, error)
}

// Host bundles the services of one frontend for one compilation session.
type Host interface {
	Elements() Elements
	Types() Types
	Annotations() AnnotationResolver
}
