package element

import (
	"fmt"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
)

// VoidName is the name reported by VoidElement.
const VoidName = "void"

// Element is a node of the model. The set of implementations is closed to
// this package.
type Element interface {
	Name() string
	isElement()
}

// Declared is an element backed by a declaration.
type Declared interface {
	Element
	SimpleName() string
	AnnotationMetadata() annotation.Metadata
	Native() host.Declaration
}

// VoidElement represents the absence of a type.
type VoidElement struct{}

// Name returns VoidName.
func (VoidElement) Name() string { return VoidName }

func (VoidElement) String() string { return VoidName }

func (VoidElement) isElement() {}

// Error reports a host or session failure while processing a declaration.
type Error struct {
	Op          string // query that failed
	Declaration string // declaration being processed
	Err         error
}

func (e *Error) Error() string {
	return fmt.Sprintf("element %s %s: %v", e.Op, e.Declaration, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func typeString(t host.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
