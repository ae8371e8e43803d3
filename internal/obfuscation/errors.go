package obfuscation

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/obfuscation/core/response"
)

var (
	ErrNilCodec  = errors.New("obfuscation: codec is required")
	ErrNilLogger = errors.New("obfuscation: logger cannot be nil")
	ErrNilRouter = errors.New("obfuscation: router cannot be nil")
	ErrNilServer = errors.New("obfuscation: server cannot be nil")
	ErrSelfCheck = errors.New("obfuscation: codec self-check failed")
)

// HTTP errors rendered by the API.
var (
	ErrInvalidToken = response.NewHTTPError(http.StatusBadRequest, "invalid_token", "invalid or corrupted token")
	ErrInvalidID    = response.ErrBadRequest.WithMessage("id must be a 64-bit signed integer")
)
