package runtime

import (
	"context"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/uuid"
)

// DefaultResolveTimeout limits DNS lookups of built-in functions.
const DefaultResolveTimeout = 2 * time.Second

// Resolver performs reverse DNS lookups. *net.Resolver implements it.
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Context is the environment of one script execution. It is constructed
// with NewContext and not changed afterwards, so it may be shared.
type Context struct {
	target      string
	functions   FunctionTable
	loader      Loader
	logger      Logger
	resolver    Resolver
	output      io.Writer
	preferences map[string]string
	timeout     time.Duration
	runID       uuid.UUID
}

// Option configures a Context.
type Option func(*Context)

// WithFunctions sets the table of built-in functions.
func WithFunctions(ft FunctionTable) Option {
	return func(c *Context) { c.functions = ft }
}

// WithLoader sets the loader for includes.
func WithLoader(l Loader) Option {
	return func(c *Context) { c.loader = l }
}

// WithLogger sets the logger for scripts.
func WithLogger(l Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithResolver sets the DNS resolver.
func WithResolver(r Resolver) Option {
	return func(c *Context) { c.resolver = r }
}

// WithOutput sets the writer display() prints to.
func WithOutput(w io.Writer) Option {
	return func(c *Context) { c.output = w }
}

// WithPreferences sets scanner preferences, keyed by parameter id.
func WithPreferences(prefs map[string]string) Option {
	return func(c *Context) {
		c.preferences = make(map[string]string, len(prefs))
		for k, v := range prefs {
			c.preferences[k] = v
		}
	}
}

// WithResolveTimeout sets the timeout for DNS lookups.
func WithResolveTimeout(d time.Duration) Option {
	return func(c *Context) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewContext creates the context for a script running against target.
// target may be empty.
func NewContext(target string, opts ...Option) *Context {
	c := &Context{
		target:      target,
		functions:   NoFunctions{},
		loader:      NoOpLoader{},
		logger:      DefaultLogger(),
		resolver:    net.DefaultResolver,
		output:      os.Stdout,
		preferences: map[string]string{},
		timeout:     DefaultResolveTimeout,
		runID:       uuid.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	tracer().Debugf("new context %s for target %q", c.runID, target)
	return c
}

// Target returns the host identity of the target, as given.
func (c *Context) Target() string { return c.target }

// Functions returns the table of built-in functions.
func (c *Context) Functions() FunctionTable { return c.functions }

// Loader returns the loader for includes.
func (c *Context) Loader() Loader { return c.loader }

// Logger returns the logger for scripts.
func (c *Context) Logger() Logger { return c.logger }

// Resolver returns the DNS resolver.
func (c *Context) Resolver() Resolver { return c.resolver }

// Output returns the writer display() prints to.
func (c *Context) Output() io.Writer { return c.output }

// ResolveTimeout returns the timeout for DNS lookups.
func (c *Context) ResolveTimeout() time.Duration { return c.timeout }

// RunID identifies the execution in logs.
func (c *Context) RunID() uuid.UUID { return c.runID }

// Preference returns a scanner preference.
func (c *Context) Preference(id string) (string, bool) {
	v, ok := c.preferences[id]
	return v, ok
}
