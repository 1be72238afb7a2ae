package host

//go:generate go tool stringer -type=TypeKind,DeclarationKind -output=kind_string.go

// TypeKind classifies the shape of a raw type handle.
type TypeKind int

const (
	TypeKindOther        TypeKind = iota // anything the element model does not classify
	TypeKindNone                         // absence of a type, e.g. a method without result
	TypeKindDeclared                     // nominal type backed by a declaration
	TypeKindPrimitive                    // int, bool, string, ...
	TypeKindArray                        // arrays and slices
	TypeKindTypeVariable                 // type parameter reference
	TypeKindWildcard                     // ? / ? extends X
)

// DeclarationKind classifies a declaration symbol.
type DeclarationKind int

const (
	DeclarationKindOther DeclarationKind = iota
	DeclarationKindPackage
	DeclarationKindClass
	DeclarationKindInterface
	DeclarationKindEnum
	DeclarationKindAnnotation
	DeclarationKindRecord
	DeclarationKindField
	DeclarationKindMethod
	DeclarationKindConstructor
	DeclarationKindParameter
	DeclarationKindFunction
	DeclarationKindTypeParameter
)

// IsClassLike reports whether declarations of this kind define a type that
// can own members: classes, interfaces, enums, annotations and records.
func (k DeclarationKind) IsClassLike() bool {
	switch k {
	case DeclarationKindClass, DeclarationKindInterface, DeclarationKindEnum,
		DeclarationKindAnnotation, DeclarationKindRecord:
		return true
	default:
		return false
	}
}

// IsInterface reports whether the kind is an interface or annotation type.
func (k DeclarationKind) IsInterface() bool {
	return k == DeclarationKindInterface || k == DeclarationKindAnnotation
}

// IsExecutable reports whether the kind declares something callable.
func (k DeclarationKind) IsExecutable() bool {
	switch k {
	case DeclarationKindMethod, DeclarationKindConstructor, DeclarationKindFunction:
		return true
	default:
		return false
	}
}
