// Package match ranks declared type names by similarity to a name that did
// not resolve, so unknown names can be reported with suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known qualified names against a query
//   - Suggest: returns the names worth offering as "did you mean"
package match
