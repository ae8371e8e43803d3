package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default handler.Context implementation.
// Path parameters are read from the request via http.Request.PathValue.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

// NewContext creates a Context for w and r.
// It satisfies the factory signature expected by WithContextFactory.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores val in the request context under key.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// Request returns the current request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer for the request.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the path wildcard named key, or "" if absent.
func (c *Context) Param(key string) string {
	return c.r.PathValue(key)
}
