// Package host defines the contract a compiler frontend must satisfy for the
// element model to inspect its types.
//
// Nothing here is implemented against a concrete frontend. A frontend adapter
// (see internal/gotypes and internal/classpath) supplies:
//   - Type: an opaque handle to a type the frontend already resolved
//   - Declaration: the symbol behind a declared type or member
//   - Elements: lookup of a type declaration by qualified name
//   - Types: erasure, assignability and type arguments
//
// All services are read-only. The element layer never mutates frontend state.
package host
