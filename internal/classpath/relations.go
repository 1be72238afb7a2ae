package classpath

import (
	"fmt"

	"inject-visitor/internal/host"
)

// Erasure implements host.Types: type arguments are dropped, type variables
// and wildcards erase to their first upper bound or ObjectName.
func (cp *Classpath) Erasure(t host.Type) (host.Type, error) {
	if err := cp.own(t); err != nil {
		return nil, err
	}

	return cp.erase(t), nil
}

func (cp *Classpath) erase(t host.Type) host.Type {
	switch t := t.(type) {
	case *declaredType:
		if len(t.args) == 0 {
			return t
		}
		return &declaredType{cp: cp, name: t.name}
	case *arrayType:
		return &arrayType{elem: cp.erase(t.elem)}
	case *typeVariable:
		if len(t.param.bounds) > 0 {
			return cp.erase(t.param.bounds[0])
		}
		return cp.object()
	case *wildcardType:
		if t.bound != nil && !t.superOf {
			return cp.erase(t.bound)
		}
		return cp.object()
	default:
		return t
	}
}

func (cp *Classpath) object() *declaredType {
	return &declaredType{cp: cp, name: ObjectName}
}

// TypeArguments implements host.Types.
func (cp *Classpath) TypeArguments(t host.Type) ([]host.Type, error) {
	if err := cp.own(t); err != nil {
		return nil, err
	}

	d, ok := t.(*declaredType)
	if !ok {
		return nil, nil
	}

	return append([]host.Type(nil), d.args...), nil
}

// IsAssignable implements host.Types with Java-style nominal subtyping.
// A cycle in the class hierarchy is reported as host.ErrInconsistent.
func (cp *Classpath) IsAssignable(from, to host.Type) (bool, error) {
	if err := cp.own(from); err != nil {
		return false, err
	}
	if err := cp.own(to); err != nil {
		return false, err
	}

	return cp.assignable(from, to)
}

func (cp *Classpath) assignable(from, to host.Type) (bool, error) {
	switch f := from.(type) {
	case noType:
		return false, nil

	case *primitiveType:
		return sameType(from, to), nil

	case *typeVariable:
		if sameType(from, to) || isObject(to) {
			return true, nil
		}
		for _, bound := range f.param.bounds {
			ok, err := cp.assignable(bound, to)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil

	case *arrayType:
		if isObject(to) {
			return true, nil
		}
		ta, ok := to.(*arrayType)
		if !ok {
			return false, nil
		}
		if _, prim := f.elem.(*primitiveType); prim {
			return sameType(f.elem, ta.elem), nil
		}
		return cp.assignable(f.elem, ta.elem)

	case *declaredType:
		if isObject(to) {
			return true, nil
		}
		target, ok := to.(*declaredType)
		if !ok {
			return false, nil
		}

		view, found, err := cp.asSuper(f, target.name, map[string]bool{})
		if err != nil || !found {
			return false, err
		}

		return cp.argumentsContained(view, target)

	default:
		return false, nil
	}
}

// asSuper walks the supertypes of t looking for the class named name and
// returns that supertype with t's type arguments substituted through.
func (cp *Classpath) asSuper(t *declaredType, name string, onPath map[string]bool) (*declaredType, bool, error) {
	if t.name == name {
		return t, true, nil
	}

	c, ok := t.class()
	if !ok {
		return nil, false, nil
	}
	if onPath[c.qualified] {
		return nil, false, fmt.Errorf("%w: cyclic inheritance involving %s", host.ErrInconsistent, c.qualified)
	}
	onPath[c.qualified] = true
	defer delete(onPath, c.qualified)

	raw := len(t.args) == 0 && len(c.typeParams) > 0
	subst := make(map[*typeParamDecl]host.Type, len(c.typeParams))
	if !raw {
		if len(t.args) != len(c.typeParams) {
			return nil, false, fmt.Errorf("%w: %s expects %d type arguments, got %d",
				host.ErrInconsistent, c.qualified, len(c.typeParams), len(t.args))
		}
		for i, tp := range c.typeParams {
			subst[tp] = t.args[i]
		}
	}

	for _, st := range c.supertypes() {
		sup, ok := st.(*declaredType)
		if !ok {
			continue
		}

		// Supertypes of a raw type are erased.
		var next *declaredType
		if raw {
			next, _ = cp.erase(sup).(*declaredType)
		} else {
			next, _ = cp.substitute(sup, subst).(*declaredType)
		}
		if next == nil {
			continue
		}

		found, ok, err := cp.asSuper(next, name, onPath)
		if err != nil || ok {
			return found, ok, err
		}
	}

	return nil, false, nil
}

// argumentsContained checks the type arguments of sub (already viewed as the
// target's class) against those of target. Raw types on either side match.
func (cp *Classpath) argumentsContained(sub, target *declaredType) (bool, error) {
	if len(sub.args) == 0 || len(target.args) == 0 {
		return true, nil
	}
	if len(sub.args) != len(target.args) {
		return false, nil
	}

	for i, ta := range target.args {
		sa := sub.args[i]

		w, ok := ta.(*wildcardType)
		if !ok {
			if !sameType(sa, ta) {
				return false, nil
			}
			continue
		}

		if w.bound == nil {
			continue
		}

		var (
			contained bool
			err       error
		)
		if w.superOf {
			contained, err = cp.assignable(w.bound, upperBound(sa))
		} else {
			contained, err = cp.assignable(upperBound(sa), w.bound)
		}
		if err != nil || !contained {
			return false, err
		}
	}

	return true, nil
}

func upperBound(t host.Type) host.Type {
	if w, ok := t.(*wildcardType); ok && w.bound != nil && !w.superOf {
		return w.bound
	}

	return t
}

func (cp *Classpath) substitute(t host.Type, subst map[*typeParamDecl]host.Type) host.Type {
	switch t := t.(type) {
	case *typeVariable:
		if s, ok := subst[t.param]; ok {
			return s
		}
		return t
	case *declaredType:
		if len(t.args) == 0 {
			return t
		}
		out := &declaredType{cp: cp, name: t.name, args: make([]host.Type, len(t.args))}
		for i, a := range t.args {
			out.args[i] = cp.substitute(a, subst)
		}
		return out
	case *arrayType:
		return &arrayType{elem: cp.substitute(t.elem, subst)}
	case *wildcardType:
		if t.bound == nil {
			return t
		}
		return &wildcardType{bound: cp.substitute(t.bound, subst), superOf: t.superOf}
	default:
		return t
	}
}

func isObject(t host.Type) bool {
	d, ok := t.(*declaredType)
	return ok && d.name == ObjectName && len(d.args) == 0
}

// own rejects handles that were not created by this classpath.
func (cp *Classpath) own(t host.Type) error {
	switch t := t.(type) {
	case noType, *primitiveType, *arrayType, *typeVariable, *wildcardType:
		return nil
	case *declaredType:
		if t.cp == cp {
			return nil
		}
		return fmt.Errorf("%w: type %s belongs to another classpath", host.ErrInconsistent, t)
	default:
		return fmt.Errorf("%w: foreign type handle %T", host.ErrInconsistent, t)
	}
}
