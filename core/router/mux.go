package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/obfuscation/core/handler"
)

// catchAll is registered on every root mux to route unmatched requests
// through the middleware chain and the error handler.
const catchAll = "/"

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

type mux[C handler.Context] struct {
	serveMux     *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger

	// root is nil on the root mux; inline routers share its ServeMux.
	root   *mux[C]
	parent *mux[C]
	prefix string

	routes    []Route
	hasRoutes bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		serveMux:     http.NewServeMux(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			return any(NewContext(w, r)).(C)
		}
	}

	m.serveMux.Handle(catchAll, m.endpoint(m.unmatched))

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.rootMux().serveMux.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

// Method registers h for each of methods. Duplicates are ignored.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !slices.Contains(knownMethods, method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware. On the root router it applies to every request,
// including unmatched ones, and must be called before any route is added.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.hasRoutes {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With returns an inline router whose routes run the extra middlewares.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		root:        m.rootMux(),
		parent:      m,
		prefix:      m.prefix,
		middlewares: middlewares,
	}
}

// Group calls fn with an inline router sharing this router's prefix.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route calls fn with an inline router whose patterns are prefixed with prefix.
func (m *mux[C]) Route(prefix string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, prefix))
	}
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, prefix))
	}

	im := &mux[C]{
		root:   m.rootMux(),
		parent: m,
		prefix: m.prefix + strings.TrimSuffix(prefix, "/"),
	}
	fn(im)
	return im
}

// Routes returns all registered routes sorted by pattern.
func (m *mux[C]) Routes() []Route {
	routes := slices.Clone(m.rootMux().routes)
	slices.SortFunc(routes, func(a, b Route) int {
		if c := strings.Compare(a.Pattern, b.Pattern); c != 0 {
			return c
		}
		return strings.Compare(a.Method, b.Method)
	})
	return routes
}

func (m *mux[C]) rootMux() *mux[C] {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	full := m.prefix + pattern
	if method == "" && full == catchAll {
		panic(fmt.Errorf("%w: '%s' is reserved, use '/{$}' for the root path", ErrInvalidPattern, full))
	}

	// Inline routers bake their middleware chain in at registration time;
	// root middleware is applied per request in serve.
	var inline []handler.Middleware[C]
	for cur := m; cur != nil && cur.root != nil; cur = cur.parent {
		inline = append(slices.Clone(cur.middlewares), inline...)
	}
	if len(inline) > 0 {
		fn = chain(inline, fn)
	}

	root := m.rootMux()
	m.hasRoutes = true
	root.hasRoutes = true

	key := full
	if method != "" {
		key = method + " " + full
	}
	root.serveMux.Handle(key, root.endpoint(fn))
	root.routes = append(root.routes, Route{Method: method, Pattern: full})
}

func (m *mux[C]) endpoint(fn handler.HandlerFunc[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, fn)
	})
}

func (m *mux[C]) serve(w http.ResponseWriter, r *http.Request, fn handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r)

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, ctx.Request()); err != nil {
		if ww.Written() {
			m.logger.Error("response failed after headers were written",
				"error", err,
				"path", r.URL.Path,
				"method", r.Method,
				"status", ww.Status(),
			)
			return
		}
		m.errorHandler(ctx, err)
	}
}

// unmatched reports 405 when the path exists under another method, else 404.
func (m *mux[C]) unmatched(ctx C) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if allowed := m.allowedMethods(r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			return ErrMethodNotAllowed
		}
		return ErrNotFound
	}
}

func (m *mux[C]) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, method := range knownMethods {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := m.serveMux.Handler(probe); pattern != "" && pattern != catchAll {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
