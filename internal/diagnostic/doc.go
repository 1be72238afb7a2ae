// Package diagnostic provides structured errors, warnings, and infos
// produced while inspecting elements.
//
// Key capabilities:
//   - Host failures reported against the declaration and member they hit
//   - Absent (unmodelled) types reported as infos
//   - A combined error for callers that only need pass/fail
package diagnostic
