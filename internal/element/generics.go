package element

// GenericsResolver resolves the generic type arguments of a class element.
type GenericsResolver interface {
	Generics(f *Factory, c *ClassElement) ([]Element, error)
}

// NoGenerics resolves nothing: every class, generic or not, reports no type
// arguments. Callers that need generic-aware output must select
// TypeArgumentGenerics or treat every type as raw.
type NoGenerics struct{}

// Generics returns an empty slice.
func (NoGenerics) Generics(*Factory, *ClassElement) ([]Element, error) {
	return []Element{}, nil
}

// TypeArgumentGenerics resolves the actual type arguments of the handle a
// class element was built from, in declaration order and keeping
// duplicates. Arguments the factory cannot model are skipped.
type TypeArgumentGenerics struct{}

// Generics maps each type argument through the factory.
func (TypeArgumentGenerics) Generics(f *Factory, c *ClassElement) ([]Element, error) {
	args, err := f.ctx.Types().TypeArguments(c.native)
	if err != nil {
		return nil, c.fail("generics", err)
	}

	out := make([]Element, 0, len(args))
	for _, arg := range args {
		el, ok, err := f.Of(arg)
		if err != nil {
			return nil, err
		}
		if !ok {
			f.ctx.Logger().Debugf("skipping type argument %s of %s", arg, c.name)
			continue
		}

		out = append(out, el)
	}

	return out, nil
}
