package gotypes

import (
	"go/types"

	"inject-visitor/internal/host"
)

// typeHandle wraps a go/types type as a host.Type.
type typeHandle struct {
	u *Universe
	t types.Type
}

func (h *typeHandle) Kind() host.TypeKind {
	switch t := types.Unalias(h.t).(type) {
	case *types.Named:
		return host.TypeKindDeclared
	case *types.Basic:
		if t.Kind() == types.Invalid {
			return host.TypeKindOther
		}
		return host.TypeKindPrimitive
	case *types.Slice, *types.Array:
		return host.TypeKindArray
	case *types.TypeParam:
		return host.TypeKindTypeVariable
	default:
		return host.TypeKindOther
	}
}

func (h *typeHandle) String() string {
	return types.TypeString(h.t, nil)
}

// Declaration implements host.DeclaredType.
func (h *typeHandle) Declaration() (host.Declaration, bool) {
	named, ok := types.Unalias(h.t).(*types.Named)
	if !ok {
		return nil, false
	}

	d, ok := h.u.typeDecl(named.Obj())
	if !ok {
		return nil, false
	}

	return d, true
}

// GoType returns the wrapped go/types type.
func (h *typeHandle) GoType() types.Type {
	return h.t
}

// noResult is the result type of a function that returns nothing.
type noResult struct{}

func (noResult) Kind() host.TypeKind { return host.TypeKindNone }
func (noResult) String() string      { return "()" }

// resultType maps a result list to a single handle: nothing, the only
// result, or the whole tuple.
func (u *Universe) resultType(results *types.Tuple) host.Type {
	switch results.Len() {
	case 0:
		return noResult{}
	case 1:
		return u.TypeOf(results.At(0).Type())
	default:
		return u.TypeOf(results)
	}
}
