// Package annotation models the annotations declared on a declaration as an
// immutable capability map: annotation name to member values.
//
// Go sources have no annotations, so the Go frontend reads them from comment
// directives such as
//
//	//inject:singleton
//	//inject:named primary
//	//inject:qualifier name=db scope="request"
//
// and from struct tags on fields.
package annotation
