// Package visitor holds the session-scoped state shared by every element
// built during one compilation or analysis run.
package visitor

import (
	"errors"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
)

// ErrClosed is returned by queries issued after the session ended.
var ErrClosed = errors.New("visitor: context closed")

// Context bundles the frontend services of one session. It is passed
// explicitly to the element factory and shared by all elements derived from
// it; it must outlive them.
type Context struct {
	elements    host.Elements
	types       host.Types
	annotations host.AnnotationResolver
	log         commonlog.Logger
	closed      atomic.Bool
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the session logger.
func WithLogger(log commonlog.Logger) Option {
	return func(c *Context) {
		c.log = log
	}
}

// WithAnnotationResolver replaces the frontend's annotation resolver.
func WithAnnotationResolver(r host.AnnotationResolver) Option {
	return func(c *Context) {
		c.annotations = r
	}
}

// New starts a session over the services of h.
func New(h host.Host, opts ...Option) *Context {
	c := &Context{
		elements:    h.Elements(),
		types:       h.Types(),
		annotations: h.Annotations(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = commonlog.GetLogger("inject-visitor.visitor")
	}
	if c.annotations == nil {
		c.annotations = noAnnotations{}
	}

	return c
}

// Elements returns the declaration lookup service.
func (c *Context) Elements() host.Elements { return c.elements }

// Types returns the type relation service.
func (c *Context) Types() host.Types { return c.types }

// Annotations returns the annotation metadata resolver.
func (c *Context) Annotations() host.AnnotationResolver { return c.annotations }

// Logger returns the session logger.
func (c *Context) Logger() commonlog.Logger { return c.log }

// Close ends the session. Elements derived from the context fail with
// ErrClosed afterwards. Closing twice is a no-op.
func (c *Context) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.log.Debug("session closed")
	}
}

// Err returns ErrClosed once the session has ended, nil before.
func (c *Context) Err() error {
	if c.closed.Load() {
		return ErrClosed
	}

	return nil
}

type noAnnotations struct{}

func (noAnnotations) AnnotationMetadata(host.Declaration) (annotation.Metadata, error) {
	return annotation.Empty, nil
}
