// Package response builds handler.Response values for plain text and JSON
// bodies, and provides error handlers that turn errors into HTTP responses.
//
// Handlers return a response instead of writing to the ResponseWriter:
//
//	func show(ctx *router.Context) handler.Response {
//		if ctx.Param("id") == "" {
//			return response.Error(response.ErrBadRequest)
//		}
//		return response.JSON(map[string]string{"id": ctx.Param("id")})
//	}
//
// Errors returned by a response are rendered by the router's error handler.
// JSONErrorHandler renders HTTPError values as {"code": ..., "message": ...}
// with the error's status; other errors are mapped by status code, falling
// back to 500.
package response
