package inspect

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/diagnostic"
	"inject-visitor/internal/element"
	"inject-visitor/internal/host"
	"inject-visitor/internal/match"
	"inject-visitor/internal/visitor"
)

// ErrUnknownType is returned by Assignable for a source name that does not
// resolve to a class-like declaration.
var ErrUnknownType = errors.New("unknown type")

// Inspector walks class elements built by one factory.
type Inspector struct {
	factory     *element.Factory
	log         commonlog.Logger
	concurrency int
	known       []string
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithConcurrency bounds the number of classes inspected at once.
func WithConcurrency(n int) Option {
	return func(in *Inspector) {
		in.concurrency = n
	}
}

// WithKnownNames sets the declared names offered as suggestions when a name
// does not resolve.
func WithKnownNames(names []string) Option {
	return func(in *Inspector) {
		in.known = names
	}
}

// WithLogger sets the logger. The session logger is used by default.
func WithLogger(log commonlog.Logger) Option {
	return func(in *Inspector) {
		in.log = log
	}
}

// New creates an inspector over the elements of factory.
func New(factory *element.Factory, opts ...Option) *Inspector {
	in := &Inspector{
		factory:     factory,
		log:         factory.Context().Logger(),
		concurrency: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(in)
	}

	if in.concurrency < 1 {
		in.concurrency = 1
	}

	return in
}

// Inspect reports on the named classes. Names are inspected concurrently;
// the report lists them in argument order and skips names that do not
// resolve. The returned error is reserved for cancellation of ctx.
func (in *Inspector) Inspect(ctx context.Context, names []string) (*Report, error) {
	classes := make([]*ClassReport, len(names))
	diags := make([]diagnostic.Diagnostics, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			classes[i] = in.inspectClass(name, &diags[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("inspection interrupted: %w", err)
	}

	report := &Report{Classes: []ClassReport{}}
	for i := range names {
		if classes[i] != nil {
			report.Classes = append(report.Classes, *classes[i])
		}
		report.Diagnostics.Merge(diags[i])
	}

	in.log.Infof("inspected %d of %d classes, %d errors", len(report.Classes), len(names), len(report.Diagnostics.Errors))

	return report, nil
}

// Assignable reports whether the class named from is assignable to the type
// named to.
func (in *Inspector) Assignable(from, to string) (bool, error) {
	c, ok, err := in.factory.ClassElement(from)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownType, from)
	}

	return c.IsAssignable(to)
}

func (in *Inspector) inspectClass(name string, d *diagnostic.Diagnostics) *ClassReport {
	c, ok, err := in.factory.ClassElement(name)
	if err != nil {
		in.fail(d, name, "", err)
		return nil
	}
	if !ok {
		d.AddWarningWithSuggestions(diagnostic.CodeUnknownType, "no class-like declaration with this name",
			name, match.Suggest(name, in.known))
		return nil
	}

	r := &ClassReport{
		Name:        c.Name(),
		SimpleName:  c.SimpleName(),
		Kind:        kindName(c.Kind()),
		Inner:       c.IsInnerClass(),
		Interface:   c.IsInterface(),
		Annotations: annotationsOf(c.AnnotationMetadata()),
	}

	if generics, err := c.Generics(); err != nil {
		in.fail(d, c.Name(), "generics", err)
	} else {
		for _, g := range generics {
			r.Generics = append(r.Generics, describe(g))
		}
	}

	if fields, err := c.Fields(); err != nil {
		in.fail(d, c.Name(), "fields", err)
	} else {
		for _, f := range fields {
			r.Fields = append(r.Fields, in.variable(d, c.Name(), f.Name(), f.Native(), f.Type, f.AnnotationMetadata()))
		}
	}

	if methods, err := c.Methods(); err != nil {
		in.fail(d, c.Name(), "methods", err)
	} else {
		for _, m := range methods {
			r.Methods = append(r.Methods, in.method(d, c.Name(), m))
		}
	}

	return r
}

func (in *Inspector) method(d *diagnostic.Diagnostics, owner string, m *element.MethodElement) MethodReport {
	r := MethodReport{
		Name:        m.Name(),
		Constructor: m.IsConstructor(),
		Annotations: annotationsOf(m.AnnotationMetadata()),
	}

	var raw string
	if e, ok := m.Native().(host.ExecutableDeclaration); ok {
		raw = e.ReturnType().String()
	}
	r.Returns, r.Absent = in.typeOf(d, owner, m.Name(), raw, m.ReturnType)

	params, err := m.Parameters()
	if err != nil {
		in.fail(d, owner, m.Name(), err)
		return r
	}

	for _, p := range params {
		r.Parameters = append(r.Parameters,
			in.variable(d, owner, m.Name()+"."+p.Name(), p.Native(), p.Type, p.AnnotationMetadata()))
	}

	return r
}

func (in *Inspector) variable(
	d *diagnostic.Diagnostics,
	owner, member string,
	native host.Declaration,
	model func() (element.Element, bool, error),
	md annotation.Metadata,
) VariableReport {
	var raw string
	if v, ok := native.(host.VariableDeclaration); ok {
		raw = v.VariableType().String()
	}

	r := VariableReport{
		Name:        native.SimpleName(),
		Annotations: annotationsOf(md),
	}
	r.Type, r.Absent = in.typeOf(d, owner, member, raw, model)

	return r
}

// typeOf models a member type. Absent types are reported by their raw name.
func (in *Inspector) typeOf(
	d *diagnostic.Diagnostics,
	owner, member, raw string,
	model func() (element.Element, bool, error),
) (string, bool) {
	el, ok, err := model()
	if err != nil {
		in.fail(d, owner, member, err)
		return raw, true
	}
	if !ok {
		d.AddInfo(diagnostic.CodeAbsent, fmt.Sprintf("type %s is not modelled", raw), owner, member)
		return raw, true
	}

	return describe(el), false
}

func (in *Inspector) fail(d *diagnostic.Diagnostics, declaration, member string, err error) {
	code := diagnostic.CodeHostFailure
	if errors.Is(err, visitor.ErrClosed) {
		code = diagnostic.CodeClosed
	}

	in.log.Debugf("%s %s: %v", declaration, member, err)
	d.AddError(code, err.Error(), declaration, member)
}

// kindName renders DeclarationKindClass as "class".
func kindName(k host.DeclarationKind) string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "DeclarationKind"))
}

// describe names an element in reports.
func describe(el element.Element) string {
	switch el := el.(type) {
	case *element.ClassElement:
		return el.Name()
	case element.VoidElement:
		return element.VoidName
	case *element.FieldElement:
		return "field " + el.Name()
	case *element.MethodElement:
		return "method " + el.Name()
	case *element.ParameterElement:
		return "parameter " + el.Name()
	default:
		return el.Name()
	}
}
