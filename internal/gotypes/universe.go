package gotypes

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/tools/go/packages"

	"inject-visitor/internal/host"
)

// Universe is the set of declarations visible to one analysis session. It
// implements host.Host and all of its services, and is safe for concurrent
// queries once built.
type Universe struct {
	pkgs       map[string]*types.Package
	roots      []*types.Package
	locals     map[string]*types.TypeName
	funcScopes map[*types.Scope]*types.Func
	docs       map[types.Object]*ast.CommentGroup
	directives []string
	tagKeys    []string
	tctx       *types.Context
	log        commonlog.Logger

	mu    sync.Mutex
	decls map[types.Object]host.Declaration
}

var (
	_ host.Host               = (*Universe)(nil)
	_ host.Elements           = (*Universe)(nil)
	_ host.Types              = (*Universe)(nil)
	_ host.AnnotationResolver = (*Universe)(nil)
)

// Option configures a Universe.
type Option func(*Universe)

// WithDirectives sets the comment directive prefixes read as annotations.
func WithDirectives(prefixes ...string) Option {
	return func(u *Universe) {
		u.directives = prefixes
	}
}

// WithTags restricts the struct tag keys exposed as field annotations. All
// keys are exposed by default.
func WithTags(keys ...string) Option {
	return func(u *Universe) {
		u.tagKeys = keys
	}
}

// WithLogger sets the logger.
func WithLogger(log commonlog.Logger) Option {
	return func(u *Universe) {
		u.log = log
	}
}

// FromPackages builds a Universe over already loaded packages. Packages
// loaded without syntax contribute types but no annotations.
func FromPackages(pkgs []*packages.Package, opts ...Option) *Universe {
	u := &Universe{
		pkgs:       make(map[string]*types.Package),
		locals:     make(map[string]*types.TypeName),
		funcScopes: make(map[*types.Scope]*types.Func),
		docs:       make(map[types.Object]*ast.CommentGroup),
		directives: []string{"inject"},
		tctx:       types.NewContext(),
		decls:      make(map[types.Object]host.Declaration),
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.log == nil {
		u.log = commonlog.GetLogger("inject-visitor.gotypes")
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		u.addPackage(pkg.Types)
		u.roots = append(u.roots, pkg.Types)
		if pkg.TypesInfo != nil {
			for _, file := range pkg.Syntax {
				u.indexFile(pkg.TypesInfo, file)
			}
			u.indexLocals(pkg.Types, pkg.TypesInfo)
		}

		u.log.Debugf("indexed package %s", pkg.PkgPath)
	}

	return u
}

func (u *Universe) addPackage(p *types.Package) {
	if _, ok := u.pkgs[p.Path()]; ok {
		return
	}

	u.pkgs[p.Path()] = p
	for _, imp := range p.Imports() {
		u.addPackage(imp)
	}
}

// indexFile records doc comments and function scopes of one file.
func (u *Universe) indexFile(info *types.Info, file *ast.File) {
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			fn, ok := info.Defs[n.Name].(*types.Func)
			if !ok {
				return true
			}
			if scope := info.Scopes[n.Type]; scope != nil {
				u.funcScopes[scope] = fn
			}
			if n.Doc != nil {
				u.docs[fn] = n.Doc
			}

		case *ast.GenDecl:
			if n.Tok != token.TYPE {
				return true
			}
			for _, spec := range n.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && n.Lparen == token.NoPos {
					doc = n.Doc
				}
				if obj := info.Defs[ts.Name]; obj != nil && doc != nil {
					u.docs[obj] = doc
				}
			}

		case *ast.Field:
			if n.Doc == nil {
				return true
			}
			for _, name := range n.Names {
				if obj := info.Defs[name]; obj != nil {
					u.docs[obj] = n.Doc
				}
			}
		}

		return true
	})
}

// indexLocals registers type names declared inside function bodies.
func (u *Universe) indexLocals(pkg *types.Package, info *types.Info) {
	for _, obj := range info.Defs {
		tn, ok := obj.(*types.TypeName)
		if !ok || tn.Parent() == nil || tn.Parent() == pkg.Scope() {
			continue
		}
		if _, isParam := tn.Type().(*types.TypeParam); isParam {
			continue
		}

		u.locals[u.qualifiedTypeName(tn)] = tn
	}
}

// Names returns the qualified names of the named types declared in the
// loaded packages, imports excluded, sorted.
func (u *Universe) Names() []string {
	var names []string
	for _, pkg := range u.roots {
		scope := pkg.Scope()
		for _, name := range scope.Names() {
			if tn, ok := scope.Lookup(name).(*types.TypeName); ok && !tn.IsAlias() {
				names = append(names, u.qualifiedTypeName(tn))
			}
		}
	}

	for name, tn := range u.locals {
		if slices.Contains(u.roots, tn.Pkg()) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Elements implements host.Host.
func (u *Universe) Elements() host.Elements { return u }

// Types implements host.Host.
func (u *Universe) Types() host.Types { return u }

// Annotations implements host.Host.
func (u *Universe) Annotations() host.AnnotationResolver { return u }

// TypeOf returns the handle of a Go type.
func (u *Universe) TypeOf(t types.Type) host.Type {
	return &typeHandle{u: u, t: t}
}

// Void returns the handle for an empty result list.
func (u *Universe) Void() host.Type {
	return noResult{}
}

// TypeDeclaration implements host.Elements. Names are "import/path.Name",
// "import/path.Func.Name" for types local to a function, or a predeclared
// name such as "error". Aliases are not declarations of their own and are
// reported as absent.
func (u *Universe) TypeDeclaration(name string) (host.TypeDeclaration, bool, error) {
	tn := u.lookupTypeName(name)
	if tn == nil {
		return nil, false, nil
	}
	if tn.IsAlias() {
		u.log.Debugf("%s is an alias of %s", name, tn.Type())
		return nil, false, nil
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, false, nil
	}

	d, ok := u.typeDecl(named.Obj())
	if !ok {
		return nil, false, nil
	}

	return d, true, nil
}

func (u *Universe) lookupTypeName(name string) *types.TypeName {
	if tn, ok := u.locals[name]; ok {
		return tn
	}

	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		tn, _ := types.Universe.Lookup(name).(*types.TypeName)
		return tn
	}

	pkg, ok := u.pkgs[name[:dot]]
	if !ok {
		return nil
	}

	tn, _ := pkg.Scope().Lookup(name[dot+1:]).(*types.TypeName)

	return tn
}

// typeDecl returns the declaration of a named type, creating it on first use.
// Types whose definition failed to type-check are unresolvable.
func (u *Universe) typeDecl(obj *types.TypeName) (*typeDecl, bool) {
	named, ok := obj.Type().(*types.Named)
	if !ok || named.Underlying() == types.Typ[types.Invalid] {
		return nil, false
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if d, ok := u.decls[obj]; ok {
		return d.(*typeDecl), true
	}

	d := &typeDecl{u: u, obj: obj, named: named, qualified: u.qualifiedTypeName(obj)}
	u.decls[obj] = d

	return d, true
}

func (u *Universe) funcDecl(fn *types.Func) *funcDecl {
	u.mu.Lock()
	defer u.mu.Unlock()

	if d, ok := u.decls[fn]; ok {
		return d.(*funcDecl)
	}

	d := &funcDecl{u: u, fn: fn}
	u.decls[fn] = d

	return d
}

func (u *Universe) qualifiedTypeName(tn *types.TypeName) string {
	if tn.Pkg() == nil {
		return tn.Name()
	}
	if fn := u.enclosingFunc(tn); fn != nil {
		return funcQualifiedName(fn) + "." + tn.Name()
	}

	return tn.Pkg().Path() + "." + tn.Name()
}

// enclosingFunc returns the function whose body declares obj, or nil for
// package-level objects.
func (u *Universe) enclosingFunc(obj types.Object) *types.Func {
	if obj.Pkg() == nil {
		return nil
	}

	for s := obj.Parent(); s != nil && s != obj.Pkg().Scope(); s = s.Parent() {
		if fn, ok := u.funcScopes[s]; ok {
			return fn
		}
	}

	return nil
}

func funcQualifiedName(fn *types.Func) string {
	prefix := ""
	if fn.Pkg() != nil {
		prefix = fn.Pkg().Path() + "."
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return prefix + fn.Name()
	}

	recv := sig.Recv().Type()
	if p, ok := recv.(*types.Pointer); ok {
		recv = p.Elem()
	}
	if named, ok := types.Unalias(recv).(*types.Named); ok {
		return prefix + named.Obj().Name() + "." + fn.Name()
	}

	return prefix + fn.Name()
}
