package encoding

import (
	"fmt"

	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// DefaultMaxDepth bounds recursion into nested containers when the caller
// does not set an explicit limit.
const DefaultMaxDepth = 64

// Context carries decode-side state threaded through nested decodes. Its
// one local concern is bounding recursion depth so hostile input cannot
// exhaust the stack; client-session state for higher layers can be attached
// here later without changing codec signatures. A Context must not be shared
// across concurrent decodes.
type Context struct {
	maxDepth int
	depth    int
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithMaxDepth overrides the nesting depth limit.
func WithMaxDepth(n int) ContextOption {
	return func(c *Context) { c.maxDepth = n }
}

// NewContext returns a decode context with default limits.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Context) enter(off int) error {
	if c.depth >= c.maxDepth {
		return &wire.Malformed{Offset: off, Reason: fmt.Sprintf("container nesting exceeds depth %d", c.maxDepth)}
	}
	c.depth++
	return nil
}

func (c *Context) leave() { c.depth-- }
