// Package element is the read-only model the code-generation pipeline
// inspects: a closed set of element variants built from raw host type
// handles by a Factory.
//
// Key types:
//   - Element: any model node; callers branch on the variant with a type switch
//   - ClassElement: a declared class-like type with identity, nesting,
//     assignability, generics and member queries
//   - VoidElement: the absence of a type, e.g. the result of a void method
//   - FieldElement, MethodElement, ParameterElement: members of a class
//
// Elements hold no state of their own beyond names derived at construction.
// Every query goes back to the session's visitor.Context.
package element
