package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/obfuscation/core/handler"
)

// Wildcard in AllowOrigins, AllowMethods or AllowHeaders allows any value.
const Wildcard = "*"

// CORSConfig defines the Cross-Origin Resource Sharing policy.
type CORSConfig struct {
	// Skip bypasses CORS handling for matching requests.
	Skip func(ctx handler.Context) bool

	// AllowOrigins lists allowed origins. Empty means any origin.
	AllowOrigins []string

	// AllowMethods lists allowed methods. Empty means any method; the
	// preflight response then echoes the requested method.
	AllowMethods []string

	// AllowHeaders lists allowed request headers. Empty means any header;
	// the preflight response then echoes the requested headers.
	AllowHeaders []string

	// ExposeHeaders lists response headers readable by the client.
	ExposeHeaders []string

	// AllowCredentials is ignored for wildcard origins.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds. Zero omits the header.
	MaxAge int
}

// CORS returns a middleware that allows any origin, method and header.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig returns a CORS middleware enforcing cfg.
// Preflight requests are answered directly with 204, or 403 when the origin
// or method is not allowed. Other requests get the allow headers added to
// whatever the handler renders, including error responses.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	anyOrigin := len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, Wildcard)
	anyMethod := len(cfg.AllowMethods) == 0 || slices.Contains(cfg.AllowMethods, Wildcard)
	anyHeader := len(cfg.AllowHeaders) == 0 || slices.Contains(cfg.AllowHeaders, Wildcard)

	origins := make(map[string]struct{}, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		origins[strings.ToLower(o)] = struct{}{}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")

	// allowOrigin returns the Access-Control-Allow-Origin value for origin.
	allowOrigin := func(origin string) (string, bool) {
		if anyOrigin {
			if cfg.AllowCredentials && origin != "" {
				return origin, true
			}
			return Wildcard, true
		}
		if _, ok := origins[strings.ToLower(origin)]; ok {
			return origin, true
		}
		return "", false
	}

	methodAllowed := func(method string) bool {
		return anyMethod || slices.Contains(cfg.AllowMethods, method)
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			origin := req.Header.Get("Origin")
			allowedOrigin, allowed := allowOrigin(origin)
			credentials := cfg.AllowCredentials && allowedOrigin != Wildcard

			requestMethod := req.Header.Get("Access-Control-Request-Method")
			if req.Method == http.MethodOptions && requestMethod != "" {
				return func(w http.ResponseWriter, r *http.Request) error {
					h := w.Header()
					h.Add("Vary", "Origin")
					h.Add("Vary", "Access-Control-Request-Method")
					h.Add("Vary", "Access-Control-Request-Headers")

					if !allowed || !methodAllowed(requestMethod) {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}

					h.Set("Access-Control-Allow-Origin", allowedOrigin)
					if anyMethod {
						h.Set("Access-Control-Allow-Methods", requestMethod)
					} else {
						h.Set("Access-Control-Allow-Methods", allowMethods)
					}

					if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
						if anyHeader {
							h.Set("Access-Control-Allow-Headers", requested)
						} else {
							h.Set("Access-Control-Allow-Headers", allowHeaders)
						}
					}
					if credentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if cfg.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}

					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			if allowed {
				// Set before the handler runs so error responses carry them too.
				h := ctx.ResponseWriter().Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				h.Add("Vary", "Origin")
				if credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if exposeHeaders != "" {
					h.Set("Access-Control-Expose-Headers", exposeHeaders)
				}
			}

			return next(ctx)
		}
	}
}
