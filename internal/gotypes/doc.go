// Package gotypes is the Go frontend: it exposes packages loaded with
// golang.org/x/tools/go/packages and checked by go/types through the host
// contract.
//
// Mapping onto the element model:
//   - named types are declared types; structs are classes, interfaces are
//     interfaces, other defined types with constants are enums
//   - basic types are primitives, slices and arrays are arrays, type
//     parameters are type variables; pointers, maps, channels, functions and
//     multi-value results are not modelled
//   - an empty result list is the absence of a type
//   - comment directives (//inject:singleton) and struct tags are annotations
//
// Go has no member types, so no declaration is ever nested in a class.
// Types declared inside a function are enclosed by that function.
package gotypes
