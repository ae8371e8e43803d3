package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/obfuscation/core/handler"
	"github.com/dmitrymomot/obfuscation/core/response"
	"github.com/dmitrymomot/obfuscation/core/router"
)

func newRouter(mws ...handler.Middleware[*router.Context]) router.Router[*router.Context] {
	r := router.New[*router.Context](router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]))
	r.Use(mws...)
	return r
}

func ok(ctx *router.Context) handler.Response {
	return response.String("ok")
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
