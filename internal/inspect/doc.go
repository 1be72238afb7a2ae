// Package inspect walks class elements and reports what the model exposes:
// names, kinds, annotations, generics, and the types of fields, methods,
// and parameters.
//
// Inspection never fails on unmodelable types. Those are recorded as info
// diagnostics and the walk continues. Host failures and closed sessions
// become error diagnostics naming the declaration and member they hit.
package inspect
