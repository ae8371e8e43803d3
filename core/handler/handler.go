// Package handler defines the request context and function types shared by
// the router, middleware and response packages.
package handler

import (
	"context"
	"net/http"
)

// Context is the per-request context passed to every handler.
// It embeds context.Context so it can be handed to any blocking call.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// Response renders an HTTP response: headers, status and body.
// A returned error is passed to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request and returns the response to render.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors raised while handling or rendering a request.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler to add cross-cutting behaviour.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
