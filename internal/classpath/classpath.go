package classpath

import (
	"fmt"
	"strings"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
)

// Classpath is an immutable universe of class declarations. It implements
// host.Host and all of its services.
type Classpath struct {
	classes  map[string]*classDecl
	order    []string
	packages map[string]*packageDecl
}

var (
	_ host.Host               = (*Classpath)(nil)
	_ host.Elements           = (*Classpath)(nil)
	_ host.Types              = (*Classpath)(nil)
	_ host.AnnotationResolver = (*Classpath)(nil)
)

// New builds a Classpath from manifests. Class names must be unique across
// all manifests.
func New(manifests ...*Manifest) (*Classpath, error) {
	cp := &Classpath{
		classes:  make(map[string]*classDecl),
		packages: make(map[string]*packageDecl),
	}

	b := &builder{cp: cp, specs: make(map[*classDecl]*ClassSpec)}
	for _, m := range manifests {
		for i := range m.Classes {
			if err := b.declare(&m.Classes[i], nil); err != nil {
				return nil, err
			}
		}
	}

	if _, ok := cp.classes[ObjectName]; !ok {
		if err := b.declare(&ClassSpec{Name: ObjectName}, nil); err != nil {
			return nil, err
		}
	}

	for _, name := range cp.order {
		if err := b.resolve(cp.classes[name]); err != nil {
			return nil, err
		}
	}

	return cp, nil
}

// Elements implements host.Host.
func (cp *Classpath) Elements() host.Elements { return cp }

// Types implements host.Host.
func (cp *Classpath) Types() host.Types { return cp }

// Annotations implements host.Host.
func (cp *Classpath) Annotations() host.AnnotationResolver { return cp }

// Names returns the qualified names of all declared classes in declaration
// order, nested classes after their enclosing class.
func (cp *Classpath) Names() []string {
	return append([]string(nil), cp.order...)
}

// TypeDeclaration implements host.Elements.
func (cp *Classpath) TypeDeclaration(name string) (host.TypeDeclaration, bool, error) {
	c, ok := cp.classes[name]
	if !ok {
		return nil, false, nil
	}

	return c, true, nil
}

// AnnotationMetadata implements host.AnnotationResolver.
func (cp *Classpath) AnnotationMetadata(d host.Declaration) (annotation.Metadata, error) {
	switch d := d.(type) {
	case *classDecl:
		return d.annotations, nil
	case *fieldDecl:
		return d.annotations, nil
	case *methodDecl:
		return d.annotations, nil
	default:
		return annotation.Empty, nil
	}
}

// Void returns the handle for the absence of a type.
func (cp *Classpath) Void() host.Type {
	return noType{}
}

// TypeOf parses a type reference in the scope of no class, e.g.
// "com.example.Box<java.lang.String>". Type variables are not in scope.
func (cp *Classpath) TypeOf(ref string) (host.Type, error) {
	r, err := parseTypeRef(ref)
	if err != nil {
		return nil, err
	}

	return cp.resolveRef(r, nil, nil)
}

type builder struct {
	cp    *Classpath
	specs map[*classDecl]*ClassSpec
}

func (b *builder) declare(spec *ClassSpec, outer *classDecl) error {
	if !validName(spec.Name) || (outer != nil && strings.Contains(spec.Name, ".")) {
		return fmt.Errorf("invalid class name %q", spec.Name)
	}

	kind, err := parseKind(spec.Kind)
	if err != nil {
		return fmt.Errorf("class %s: %w", spec.Name, err)
	}

	c := &classDecl{cp: b.cp, kind: kind}
	if outer != nil {
		c.qualified = outer.qualified + "." + spec.Name
		c.simple = spec.Name
		c.enclosing = outer
	} else {
		c.qualified = spec.Name
		pkg, simple := splitName(spec.Name)
		c.simple = simple
		if pkg != "" {
			c.enclosing = b.pkg(pkg)
		}
	}

	if _, dup := b.cp.classes[c.qualified]; dup {
		return fmt.Errorf("duplicate class %s", c.qualified)
	}

	b.cp.classes[c.qualified] = c
	b.cp.order = append(b.cp.order, c.qualified)
	b.specs[c] = spec

	for i := range spec.Classes {
		if err := b.declare(&spec.Classes[i], c); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) pkg(name string) *packageDecl {
	p, ok := b.cp.packages[name]
	if !ok {
		p = &packageDecl{name: name}
		b.cp.packages[name] = p
	}

	return p
}

// resolve turns the textual references of a declared class into handles.
func (b *builder) resolve(c *classDecl) error {
	spec := b.specs[c]

	for _, tp := range spec.TypeParameters {
		if !isIdent(tp.Name) {
			return fmt.Errorf("class %s: invalid type parameter %q", c.qualified, tp.Name)
		}
		c.typeParams = append(c.typeParams, &typeParamDecl{owner: c, name: tp.Name})
	}

	scope := b.scope(c)
	for i, tp := range spec.TypeParameters {
		for _, bound := range tp.Bounds {
			t, err := b.ref(c, bound, scope)
			if err != nil {
				return err
			}
			c.typeParams[i].bounds = append(c.typeParams[i].bounds, t)
		}
	}

	if spec.Superclass != "" {
		t, err := b.ref(c, spec.Superclass, scope)
		if err != nil {
			return err
		}
		c.superclass = t
	}

	for _, iface := range spec.Interfaces {
		t, err := b.ref(c, iface, scope)
		if err != nil {
			return err
		}
		c.interfaces = append(c.interfaces, t)
	}

	md, err := buildAnnotations(spec.Annotations)
	if err != nil {
		return fmt.Errorf("class %s: %w", c.qualified, err)
	}
	c.annotations = md

	for _, f := range spec.Fields {
		field, err := b.variable(c, c.qualified, host.DeclarationKindField, f, scope)
		if err != nil {
			return err
		}
		c.members = append(c.members, field)
	}

	for _, m := range spec.Methods {
		method, err := b.method(c, m, scope)
		if err != nil {
			return err
		}
		c.members = append(c.members, method)
	}

	return nil
}

// scope collects the type parameters visible in c: its own, then those of
// enclosing classes.
func (b *builder) scope(c *classDecl) map[string]*typeParamDecl {
	scope := make(map[string]*typeParamDecl)
	for cur := c; cur != nil; {
		for _, tp := range cur.typeParams {
			if _, shadowed := scope[tp.name]; !shadowed {
				scope[tp.name] = tp
			}
		}

		outer, ok := cur.enclosing.(*classDecl)
		if !ok {
			break
		}
		cur = outer
	}

	return scope
}

func (b *builder) ref(c *classDecl, s string, scope map[string]*typeParamDecl) (host.Type, error) {
	r, err := parseTypeRef(s)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", c.qualified, err)
	}

	t, err := b.cp.resolveRef(r, lookupPrefixes(c), scope)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", c.qualified, err)
	}

	return t, nil
}

func (b *builder) variable(
	c *classDecl,
	parent string,
	kind host.DeclarationKind,
	spec FieldSpec,
	scope map[string]*typeParamDecl,
) (*fieldDecl, error) {
	if !isIdent(spec.Name) {
		return nil, fmt.Errorf("%s: invalid member name %q", parent, spec.Name)
	}
	if spec.Type == "" {
		return nil, fmt.Errorf("%s.%s: missing type", parent, spec.Name)
	}

	t, err := b.ref(c, spec.Type, scope)
	if err != nil {
		return nil, err
	}
	if t.Kind() == host.TypeKindNone {
		return nil, fmt.Errorf("%s.%s: void is not a valid variable type", parent, spec.Name)
	}

	md, err := buildAnnotations(spec.Annotations)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", parent, spec.Name, err)
	}

	return &fieldDecl{
		owner:       c,
		kind:        kind,
		name:        spec.Name,
		qualified:   parent + "." + spec.Name,
		typ:         t,
		annotations: md,
	}, nil
}

func (b *builder) method(c *classDecl, spec MethodSpec, scope map[string]*typeParamDecl) (*methodDecl, error) {
	m := &methodDecl{owner: c, kind: host.DeclarationKindMethod, name: spec.Name}
	if spec.Constructor {
		m.kind = host.DeclarationKindConstructor
		if m.name == "" {
			m.name = c.simple
		}
	}
	if !isIdent(m.name) {
		return nil, fmt.Errorf("class %s: invalid method name %q", c.qualified, spec.Name)
	}

	returns := spec.Returns
	if returns == "" || spec.Constructor {
		returns = "void"
	}

	t, err := b.ref(c, returns, scope)
	if err != nil {
		return nil, err
	}
	m.returns = t

	for _, p := range spec.Parameters {
		param, err := b.variable(c, m.QualifiedName(), host.DeclarationKindParameter, p, scope)
		if err != nil {
			return nil, err
		}
		m.params = append(m.params, param)
	}

	md, err := buildAnnotations(spec.Annotations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.QualifiedName(), err)
	}
	m.annotations = md

	return m, nil
}

// resolveRef turns a parsed reference into a handle. A name without a
// matching class is tried under each prefix in turn: nested classes of the
// referencing class and its enclosing classes, then its package.
func (cp *Classpath) resolveRef(r *typeRef, prefixes []string, scope map[string]*typeParamDecl) (host.Type, error) {
	var t host.Type

	switch {
	case r.wildcard:
		w := &wildcardType{superOf: r.superOf}
		if r.bound != nil {
			bound, err := cp.resolveRef(r.bound, prefixes, scope)
			if err != nil {
				return nil, err
			}
			w.bound = bound
		}
		return w, nil

	case r.name == "void":
		if len(r.args) > 0 || r.dims > 0 {
			return nil, fmt.Errorf("invalid use of void")
		}
		return noType{}, nil

	case primitives[r.name]:
		if len(r.args) > 0 {
			return nil, fmt.Errorf("primitive %s cannot have type arguments", r.name)
		}
		t = &primitiveType{name: r.name}

	case scope[r.name] != nil:
		if len(r.args) > 0 {
			return nil, fmt.Errorf("type variable %s cannot have type arguments", r.name)
		}
		t = &typeVariable{param: scope[r.name]}

	default:
		name := r.name
		if _, ok := cp.classes[name]; !ok {
			for _, prefix := range prefixes {
				if _, ok := cp.classes[prefix+"."+name]; ok {
					name = prefix + "." + name
					break
				}
			}
		}

		d := &declaredType{cp: cp, name: name}
		for _, a := range r.args {
			arg, err := cp.resolveRef(a, prefixes, scope)
			if err != nil {
				return nil, err
			}
			d.args = append(d.args, arg)
		}
		t = d
	}

	for range r.dims {
		t = &arrayType{elem: t}
	}

	return t, nil
}

func buildAnnotations(specs []AnnotationSpec) (annotation.Metadata, error) {
	if len(specs) == 0 {
		return annotation.Empty, nil
	}

	b := annotation.NewBuilder()
	for _, a := range specs {
		if !validName(a.Name) {
			return annotation.Empty, fmt.Errorf("invalid annotation name %q", a.Name)
		}

		b.Add(a.Name)
		for member, values := range a.Values {
			b.Set(a.Name, member, values...)
		}
	}

	return b.Build(), nil
}

func parseKind(s string) (host.DeclarationKind, error) {
	switch s {
	case "", "class":
		return host.DeclarationKindClass, nil
	case "interface":
		return host.DeclarationKindInterface, nil
	case "enum":
		return host.DeclarationKindEnum, nil
	case "annotation":
		return host.DeclarationKindAnnotation, nil
	case "record":
		return host.DeclarationKindRecord, nil
	default:
		return host.DeclarationKindOther, fmt.Errorf("unknown class kind %q", s)
	}
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if !isIdent(part) {
			return false
		}
	}

	return true
}

func splitName(qualified string) (string, string) {
	i := strings.LastIndexByte(qualified, '.')
	if i < 0 {
		return "", qualified
	}

	return qualified[:i], qualified[i+1:]
}

func lookupPrefixes(c *classDecl) []string {
	var prefixes []string
	for {
		prefixes = append(prefixes, c.qualified)

		outer, ok := c.enclosing.(*classDecl)
		if !ok {
			break
		}
		c = outer
	}

	if pkg, _ := splitName(c.qualified); pkg != "" {
		prefixes = append(prefixes, pkg)
	}

	return prefixes
}
