package element

import (
	"errors"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/classpath"
	"inject-visitor/internal/host"
	"inject-visitor/internal/visitor"
)

const manifest = `
classes:
  - name: Bar
  - name: Baz
  - name: Foo
    superclass: Bar
    annotations:
      - name: javax.inject.Singleton
    classes:
      - name: Nested
  - name: app.Service
    kind: interface
  - name: app.Repository
    kind: interface
    typeParameters:
      - name: T
    methods:
      - name: first
        returns: T
  - name: app.Entity
  - name: app.UserRepository
    interfaces: [Repository<app.Entity>, Service]
    fields:
      - name: size
        type: int
      - name: delegate
        type: app.Repository<app.Entity>
      - name: ghost
        type: app.Missing
    methods:
      - name: clear
      - name: find
        returns: app.Entity
        parameters:
          - name: id
            type: long
          - name: hint
            type: app.Entity
            annotations:
              - name: app.Nullable
      - name: ids
        returns: long[]
  - name: app.Pair
    typeParameters:
      - name: K
      - name: V
`

type session struct {
	cp      *classpath.Classpath
	ctx     *visitor.Context
	factory *Factory
}

func newSession(t *testing.T, opts ...FactoryOption) *session {
	t.Helper()

	cp, err := classpath.Parse([]byte(manifest))
	require.NoError(t, err)

	ctx := visitor.New(cp)
	t.Cleanup(ctx.Close)

	return &session{cp: cp, ctx: ctx, factory: NewFactory(ctx, opts...)}
}

func (s *session) typeOf(t *testing.T, ref string) host.Type {
	t.Helper()

	typ, err := s.cp.TypeOf(ref)
	require.NoError(t, err)

	return typ
}

func (s *session) class(t *testing.T, ref string) *ClassElement {
	t.Helper()

	el, ok, err := s.factory.Of(s.typeOf(t, ref))
	require.NoError(t, err)
	require.True(t, ok, ref)

	c, ok := el.(*ClassElement)
	require.True(t, ok, spew.Sdump(el))

	return c
}

func TestFactory_Void(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	el, ok, err := s.factory.Of(s.cp.Void())
	require.NoError(t, err)
	require.True(t, ok)

	_, isVoid := el.(VoidElement)
	assert.True(t, isVoid)
	_, isClass := el.(*ClassElement)
	assert.False(t, isClass)
	assert.Equal(t, VoidName, el.Name())
}

func TestFactory_Absent(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	for _, ref := range []string{"int", "app.Entity[]", "app.Missing", "?"} {
		el, ok, err := s.factory.Of(s.typeOf(t, ref))
		require.NoError(t, err, ref)
		assert.False(t, ok, ref)
		assert.Nil(t, el, ref)
	}

	el, ok, err := s.factory.Of(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, el)
}

func TestFactory_TypeVariableIsAbsent(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	methods, err := s.class(t, "app.Repository").Methods()
	require.NoError(t, err)
	require.Len(t, methods, 1)

	el, ok, err := methods[0].ReturnType()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, el)
}

func TestClassElement_Identity(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	foo := s.class(t, "Foo")
	assert.Equal(t, "Foo", foo.Name())
	assert.Equal(t, "Foo", foo.SimpleName())
	assert.False(t, foo.IsInnerClass())
	assert.True(t, foo.AnnotationMetadata().HasAnnotation("javax.inject.Singleton"))
	assert.Equal(t, host.DeclarationKindClass, foo.Kind())

	nested := s.class(t, "Foo.Nested")
	assert.Equal(t, "Foo.Nested", nested.Name())
	assert.Equal(t, "Nested", nested.SimpleName())
	assert.True(t, nested.IsInnerClass())
	assert.True(t, nested.AnnotationMetadata().IsEmpty())

	repo := s.class(t, "app.UserRepository")
	assert.Equal(t, "app.UserRepository", repo.Name())
	assert.Equal(t, "UserRepository", repo.SimpleName())
	assert.False(t, repo.IsInnerClass())
	assert.False(t, repo.IsInterface())
	assert.True(t, s.class(t, "app.Service").IsInterface())
}

func TestClassElement_Deterministic(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	a := s.class(t, "app.UserRepository")
	b := s.class(t, "app.UserRepository")
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Name(), b.Name())
	assert.Equal(t, a.SimpleName(), b.SimpleName())
	assert.Equal(t, a.IsInnerClass(), b.IsInnerClass())

	for _, target := range []string{"app.Service", "app.Repository", "app.Entity", "Bar"} {
		x, err := a.IsAssignable(target)
		require.NoError(t, err)
		y, err := b.IsAssignable(target)
		require.NoError(t, err)
		assert.Equal(t, x, y, target)
	}
}

func TestClassElement_IsAssignable(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	tests := []struct {
		class  string
		target string
		want   bool
	}{
		{class: "Foo", target: "Foo", want: true},
		{class: "Foo", target: "Bar", want: true},
		{class: "Foo", target: "Baz", want: false},
		{class: "Bar", target: "Foo", want: false},
		{class: "Foo", target: classpath.ObjectName, want: true},
		{class: "app.UserRepository", target: "app.Repository", want: true},
		{class: "app.UserRepository", target: "app.Service", want: true},
		{class: "app.Entity", target: "app.Service", want: false},
		{class: "Foo", target: "does.not.Exist", want: false},
	}

	for _, tt := range tests {
		got, err := s.class(t, tt.class).IsAssignable(tt.target)
		require.NoError(t, err, "%s -> %s", tt.class, tt.target)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.class, tt.target)
	}
}

func TestClassElement_IsAssignableReflexive(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	for _, name := range s.cp.Names() {
		c, ok, err := s.factory.ClassElement(name)
		require.NoError(t, err)
		require.True(t, ok, name)

		got, err := c.IsAssignable(c.Name())
		require.NoError(t, err)
		assert.True(t, got, name)
	}
}

func TestClassElement_IsAssignableErased(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	parameterized := s.class(t, "app.Repository<app.Entity>")
	raw := s.class(t, "app.Repository")

	for _, target := range []string{"app.Repository", "app.Service", classpath.ObjectName, "app.Entity", "Bar"} {
		x, err := parameterized.IsAssignable(target)
		require.NoError(t, err)
		y, err := raw.IsAssignable(target)
		require.NoError(t, err)
		assert.Equal(t, x, y, target)
	}

	// Without erasure Repository<Entity> is not a Repository<Foo>; the
	// element answer only depends on the erased forms.
	unerased, err := s.cp.IsAssignable(
		s.typeOf(t, "app.UserRepository"),
		s.typeOf(t, "app.Repository<Foo>"),
	)
	require.NoError(t, err)
	assert.False(t, unerased)

	ok, err := s.class(t, "app.UserRepository").IsAssignableTo(s.class(t, "app.Repository<Foo>"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClassElement_GenericsMinimal(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	for _, ref := range []string{"app.Pair<app.Entity, app.Entity>", "app.Pair", "Foo", "app.Repository<app.Entity>"} {
		generics, err := s.class(t, ref).Generics()
		require.NoError(t, err)
		assert.NotNil(t, generics)
		assert.Empty(t, generics, ref)
	}
}

func TestClassElement_GenericsTypeArguments(t *testing.T) {
	t.Parallel()

	s := newSession(t, WithGenerics(TypeArgumentGenerics{}))

	generics, err := s.class(t, "app.Pair<app.Entity, app.Entity>").Generics()
	require.NoError(t, err)
	require.Len(t, generics, 2)
	assert.Equal(t, "app.Entity", generics[0].Name())
	assert.Equal(t, "app.Entity", generics[1].Name())

	generics, err = s.class(t, "app.Pair<Foo, int[]>").Generics()
	require.NoError(t, err)
	require.Len(t, generics, 1)
	assert.Equal(t, "Foo", generics[0].Name())

	generics, err = s.class(t, "app.Pair").Generics()
	require.NoError(t, err)
	assert.Empty(t, generics)
}

func TestClassElement_Members(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	repo := s.class(t, "app.UserRepository")

	fields, err := repo.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "size", fields[0].Name())
	assert.Same(t, repo, fields[0].Owner())

	_, ok, err := fields[0].Type()
	require.NoError(t, err)
	assert.False(t, ok, "primitive field has no element")

	delegate, ok, err := fields[1].Type()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "app.Repository", delegate.Name())

	_, ok, err = fields[2].Type()
	require.NoError(t, err)
	assert.False(t, ok, "unresolvable field type has no element")

	methods, err := repo.Methods()
	require.NoError(t, err)
	require.Len(t, methods, 3)

	ret, ok, err := methods[0].ReturnType()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, VoidElement{}, ret)
	assert.Equal(t, VoidName, ret.Name())

	ret, ok, err = methods[1].ReturnType()
	require.NoError(t, err)
	require.True(t, ok)
	assert.IsType(t, &ClassElement{}, ret)

	_, ok, err = methods[2].ReturnType()
	require.NoError(t, err)
	assert.False(t, ok, "array result has no element")

	params, err := methods[1].Parameters()
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "id", params[0].Name())
	assert.Same(t, methods[1], params[1].Method())
	assert.True(t, params[1].AnnotationMetadata().HasAnnotation("app.Nullable"))

	hint, ok, err := params[1].Type()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "app.Entity", hint.Name())
}

func TestFactory_ClassElement(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	c, ok, err := s.factory.ClassElement("Foo.Nested")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, c.IsInnerClass())

	c, ok, err = s.factory.ClassElement("nope.Nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestScenarioA(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	foo := s.class(t, "Foo")

	ok, err := foo.IsAssignable("Bar")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = foo.IsAssignable("Baz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScenarioB(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	methods, err := s.class(t, "app.UserRepository").Methods()
	require.NoError(t, err)

	el, ok, err := s.factory.Of(methods[0].Native().(host.ExecutableDeclaration).ReturnType())
	require.NoError(t, err)
	require.True(t, ok)

	switch el := el.(type) {
	case VoidElement:
		assert.Equal(t, VoidName, el.Name())
	default:
		t.Fatalf("expected void element, got %s", spew.Sdump(el))
	}
}

func TestScenarioC(t *testing.T) {
	t.Parallel()

	s := newSession(t)

	assert.NotPanics(t, func() {
		ok, err := s.class(t, "Foo").IsAssignable("not.visible.Anywhere")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestClosedContext(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	foo := s.class(t, "Foo")
	s.ctx.Close()

	_, err := foo.IsAssignable("Bar")
	assert.ErrorIs(t, err, visitor.ErrClosed)

	var elErr *Error
	require.ErrorAs(t, err, &elErr)
	assert.Equal(t, "Foo", elErr.Declaration)

	_, _, err = s.factory.Of(s.typeOf(t, "Foo"))
	assert.ErrorIs(t, err, visitor.ErrClosed)

	_, err = foo.Generics()
	assert.ErrorIs(t, err, visitor.ErrClosed)

	_, err = foo.Methods()
	assert.ErrorIs(t, err, visitor.ErrClosed)
}

// failingTypes wraps a classpath and fails erasure of one class.
type failingTypes struct {
	host.Types
	name string
}

func (f failingTypes) Erasure(t host.Type) (host.Type, error) {
	if t.String() == f.name {
		return nil, errors.New("symbol table corrupted")
	}

	return f.Types.Erasure(t)
}

type failingHost struct {
	*classpath.Classpath
	types       host.Types
	annotations host.AnnotationResolver
}

func (h failingHost) Types() host.Types { return h.types }

func (h failingHost) Annotations() host.AnnotationResolver {
	if h.annotations != nil {
		return h.annotations
	}

	return h.Classpath
}

type failingAnnotations struct{}

func (failingAnnotations) AnnotationMetadata(host.Declaration) (annotation.Metadata, error) {
	return annotation.Empty, errors.New("annotation processor crashed")
}

// relabelingHost repeats every executable member of a class with the kind
// of a field.
type relabelingHost struct {
	*classpath.Classpath
}

func (h relabelingHost) Elements() host.Elements { return h }

func (h relabelingHost) TypeDeclaration(name string) (host.TypeDeclaration, bool, error) {
	d, ok, err := h.Classpath.TypeDeclaration(name)
	if err != nil || !ok {
		return d, ok, err
	}

	return relabeled{TypeDeclaration: d}, true, nil
}

type relabeled struct {
	host.TypeDeclaration
}

func (r relabeled) Members() []host.Declaration {
	members := slices.Clone(r.TypeDeclaration.Members())
	for _, m := range r.TypeDeclaration.Members() {
		if e, ok := m.(host.ExecutableDeclaration); ok {
			members = append(members, fieldKind{e})
		}
	}

	return members
}

func (r relabeled) DeclaredType() host.Type {
	return relabeledType{Type: r.TypeDeclaration.DeclaredType(), decl: r}
}

type relabeledType struct {
	host.Type
	decl relabeled
}

func (t relabeledType) Declaration() (host.Declaration, bool) { return t.decl, true }

type fieldKind struct {
	host.ExecutableDeclaration
}

func (fieldKind) Kind() host.DeclarationKind { return host.DeclarationKindField }

func TestClassElement_MethodsFollowKind(t *testing.T) {
	t.Parallel()

	cp, err := classpath.Parse([]byte(manifest))
	require.NoError(t, err)

	ctx := visitor.New(relabelingHost{Classpath: cp})
	defer ctx.Close()

	repo, ok, err := NewFactory(ctx).ClassElement("app.Repository")
	require.NoError(t, err)
	require.True(t, ok)

	methods, err := repo.Methods()
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "first", methods[0].Name())
	assert.Equal(t, host.DeclarationKindMethod, methods[0].Native().Kind())

	fields, err := repo.Fields()
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestHostFailurePropagates(t *testing.T) {
	t.Parallel()

	cp, err := classpath.Parse([]byte(manifest))
	require.NoError(t, err)

	ctx := visitor.New(failingHost{Classpath: cp, types: failingTypes{Types: cp, name: "Bar"}})
	defer ctx.Close()

	f := NewFactory(ctx)
	foo, ok, err := f.ClassElement("Foo")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = foo.IsAssignable("Bar")
	require.Error(t, err)

	var elErr *Error
	require.ErrorAs(t, err, &elErr)
	assert.Equal(t, "erasure", elErr.Op)
	assert.Equal(t, "Foo", elErr.Declaration)
	assert.Contains(t, err.Error(), "symbol table corrupted")

	ok, err = foo.IsAssignable("Baz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHostInconsistencyPropagates(t *testing.T) {
	t.Parallel()

	cp, err := classpath.Parse([]byte(`
classes:
  - name: A
    superclass: B
  - name: B
    superclass: A
  - name: C
`))
	require.NoError(t, err)

	ctx := visitor.New(cp)
	defer ctx.Close()

	a, ok, err := NewFactory(ctx).ClassElement("A")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := a.IsAssignable("C")
	assert.ErrorIs(t, err, host.ErrInconsistent)
	assert.False(t, got)
}

func TestAnnotationFailurePropagates(t *testing.T) {
	t.Parallel()

	cp, err := classpath.Parse([]byte(manifest))
	require.NoError(t, err)

	ctx := visitor.New(cp, visitor.WithAnnotationResolver(failingAnnotations{}))
	defer ctx.Close()

	el, ok, err := NewFactory(ctx).Of(cp.Void())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, VoidName, el.Name())

	_, _, err = NewFactory(ctx).ClassElement("Foo")
	require.Error(t, err)

	var elErr *Error
	require.ErrorAs(t, err, &elErr)
	assert.Equal(t, "annotations", elErr.Op)
	assert.Equal(t, "Foo", elErr.Declaration)
}
