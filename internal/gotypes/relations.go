package gotypes

import (
	"fmt"
	"go/types"

	"inject-visitor/internal/host"
)

// rawType is the erasure of a generic named type: its origin with no type
// arguments bound. It is assignable from every instantiation of the origin
// and, for an interface origin, from every type implementing some
// instantiation of it.
type rawType struct {
	u      *Universe
	origin *types.Named
}

func (r *rawType) Kind() host.TypeKind { return host.TypeKindDeclared }
func (r *rawType) String() string      { return r.u.qualifiedTypeName(r.origin.Obj()) }

// Declaration implements host.DeclaredType.
func (r *rawType) Declaration() (host.Declaration, bool) {
	d, ok := r.u.typeDecl(r.origin.Obj())
	if !ok {
		return nil, false
	}

	return d, true
}

// GoType returns the generic origin.
func (r *rawType) GoType() types.Type {
	return r.origin
}

// Erasure implements host.Types. A named type with type parameters or type
// arguments erases to the raw form of its origin, so a generic type and all
// of its instantiations erase to the same type. Other types are unchanged.
func (u *Universe) Erasure(t host.Type) (host.Type, error) {
	if r, ok := t.(*rawType); ok {
		if r.u != u {
			return nil, fmt.Errorf("%w: type %s belongs to another universe", host.ErrInconsistent, r)
		}
		return r, nil
	}

	gt, err := u.unwrap(t)
	if err != nil || gt == nil {
		return t, err
	}

	named, ok := types.Unalias(gt).(*types.Named)
	if !ok {
		return t, nil
	}

	origin := named.Origin()
	if origin.TypeParams().Len() == 0 {
		return u.TypeOf(origin), nil
	}

	return &rawType{u: u, origin: origin}, nil
}

// IsAssignable implements host.Types with types.AssignableTo. The empty
// result and result tuples are assignable to nothing. A raw target accepts
// its own instantiations, and a raw interface target accepts any type whose
// methods match the interface for one consistent binding of its type
// parameters.
func (u *Universe) IsAssignable(from, to host.Type) (bool, error) {
	f, fromRaw, err := u.operand(from)
	if err != nil {
		return false, err
	}

	t, toRaw, err := u.operand(to)
	if err != nil {
		return false, err
	}

	if f == nil || t == nil || isTuple(f) || isTuple(t) {
		return false, nil
	}

	if toRaw {
		origin := t.(*types.Named)
		if named, ok := types.Unalias(f).(*types.Named); ok && named.Origin() == origin {
			return true, nil
		}

		iface, ok := origin.Underlying().(*types.Interface)
		if !ok {
			return false, nil
		}

		return implements(f, iface, origin.TypeParams()), nil
	}

	if fromRaw {
		if iface, ok := t.Underlying().(*types.Interface); ok {
			return implements(f, iface, nil), nil
		}
		return types.Identical(f, t), nil
	}

	return types.AssignableTo(f, t), nil
}

// operand unwraps an IsAssignable operand and reports whether it was raw.
// A raw operand unwraps to its generic origin.
func (u *Universe) operand(t host.Type) (types.Type, bool, error) {
	r, ok := t.(*rawType)
	if !ok {
		gt, err := u.unwrap(t)
		return gt, false, err
	}

	if r.u != u {
		return nil, false, fmt.Errorf("%w: type %s belongs to another universe", host.ErrInconsistent, r)
	}

	return r.origin, true, nil
}

// implements reports whether src has every method of iface with a matching
// signature. Type parameters listed in tparams may stand for any type, but
// each must stand for the same type across all methods.
func implements(src types.Type, iface *types.Interface, tparams *types.TypeParamList) bool {
	if named, ok := types.Unalias(src).(*types.Named); ok && named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0 {
		src = selfInstance(named)
	}

	b := binder{free: make(map[*types.TypeParam]bool), bound: make(map[*types.TypeParam]types.Type)}
	for i := 0; i < tparams.Len(); i++ {
		b.free[tparams.At(i)] = true
	}

	for i := 0; i < iface.NumMethods(); i++ {
		want := iface.Method(i)

		obj, _, _ := types.LookupFieldOrMethod(src, false, want.Pkg(), want.Name())
		have, ok := obj.(*types.Func)
		if !ok {
			return false
		}

		if !b.unify(want.Type(), have.Type()) {
			return false
		}
	}

	return true
}

// selfInstance instantiates a generic origin with its own type parameters.
// Methods of the instance then refer to the declaration's parameters rather
// than to the receiver parameters of each method.
func selfInstance(origin *types.Named) types.Type {
	tparams := origin.TypeParams()
	args := make([]types.Type, tparams.Len())
	for i := range args {
		args[i] = tparams.At(i)
	}

	inst, err := types.Instantiate(nil, origin, args, false)
	if err != nil {
		return origin
	}

	return inst
}

// binder unifies a pattern type holding free type parameters with a
// concrete type.
type binder struct {
	free  map[*types.TypeParam]bool
	bound map[*types.TypeParam]types.Type
}

func (b *binder) unify(pattern, t types.Type) bool {
	if tp, ok := pattern.(*types.TypeParam); ok && b.free[tp] {
		if prev, ok := b.bound[tp]; ok {
			return types.Identical(prev, t)
		}
		b.bound[tp] = t
		return true
	}

	switch p := types.Unalias(pattern).(type) {
	case *types.Pointer:
		q, ok := types.Unalias(t).(*types.Pointer)
		return ok && b.unify(p.Elem(), q.Elem())
	case *types.Slice:
		q, ok := types.Unalias(t).(*types.Slice)
		return ok && b.unify(p.Elem(), q.Elem())
	case *types.Array:
		q, ok := types.Unalias(t).(*types.Array)
		return ok && p.Len() == q.Len() && b.unify(p.Elem(), q.Elem())
	case *types.Map:
		q, ok := types.Unalias(t).(*types.Map)
		return ok && b.unify(p.Key(), q.Key()) && b.unify(p.Elem(), q.Elem())
	case *types.Chan:
		q, ok := types.Unalias(t).(*types.Chan)
		return ok && p.Dir() == q.Dir() && b.unify(p.Elem(), q.Elem())
	case *types.Signature:
		q, ok := types.Unalias(t).(*types.Signature)
		return ok && p.Variadic() == q.Variadic() &&
			b.unifyTuple(p.Params(), q.Params()) && b.unifyTuple(p.Results(), q.Results())
	case *types.Named:
		q, ok := types.Unalias(t).(*types.Named)
		if !ok || p.Origin() != q.Origin() || p.TypeArgs().Len() != q.TypeArgs().Len() {
			return false
		}
		for i := 0; i < p.TypeArgs().Len(); i++ {
			if !b.unify(p.TypeArgs().At(i), q.TypeArgs().At(i)) {
				return false
			}
		}
		return true
	default:
		return types.Identical(pattern, t)
	}
}

func (b *binder) unifyTuple(p, q *types.Tuple) bool {
	if p.Len() != q.Len() {
		return false
	}

	for i := 0; i < p.Len(); i++ {
		if !b.unify(p.At(i).Type(), q.At(i).Type()) {
			return false
		}
	}

	return true
}

// TypeArguments implements host.Types. A raw type has none.
func (u *Universe) TypeArguments(t host.Type) ([]host.Type, error) {
	if _, ok := t.(*rawType); ok {
		return nil, nil
	}

	gt, err := u.unwrap(t)
	if err != nil || gt == nil {
		return nil, err
	}

	named, ok := types.Unalias(gt).(*types.Named)
	if !ok {
		return nil, nil
	}

	targs := named.TypeArgs()
	out := make([]host.Type, 0, targs.Len())
	for i := 0; i < targs.Len(); i++ {
		out = append(out, u.TypeOf(targs.At(i)))
	}

	return out, nil
}

// unwrap returns the go/types type behind a handle of this universe, or nil
// for the empty result.
func (u *Universe) unwrap(t host.Type) (types.Type, error) {
	switch h := t.(type) {
	case noResult:
		return nil, nil
	case *typeHandle:
		if h.u != u {
			return nil, fmt.Errorf("%w: type %s belongs to another universe", host.ErrInconsistent, h)
		}
		return h.t, nil
	case *rawType:
		if h.u != u {
			return nil, fmt.Errorf("%w: type %s belongs to another universe", host.ErrInconsistent, h)
		}
		return h.origin, nil
	default:
		return nil, fmt.Errorf("%w: foreign type handle %T", host.ErrInconsistent, t)
	}
}

func isTuple(t types.Type) bool {
	_, ok := t.(*types.Tuple)
	return ok
}
