// Package middleware provides generic HTTP middleware for the router:
// CORS, request IDs and request logging.
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.CORS[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//	)
//
// Middleware registered on the root router also runs for unmatched routes,
// so preflight requests and 404s carry CORS headers and are logged.
package middleware
