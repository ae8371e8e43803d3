package obfuscation

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/obfuscation/core/handler"
	"github.com/dmitrymomot/obfuscation/core/logger"
	"github.com/dmitrymomot/obfuscation/core/response"
	"github.com/dmitrymomot/obfuscation/core/router"
	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

// Banner is the body of GET /.
const Banner = "Obfuscation Service API"

// EncryptResponse is the body of a successful encrypt call.
type EncryptResponse struct {
	Value encid.Token `json:"value"`
}

// Handlers serves the obfuscation API with a shared codec.
type Handlers struct {
	codec  *encid.Codec
	logger *slog.Logger
}

// NewHandlers returns handlers backed by codec.
func NewHandlers(codec *encid.Codec, log *slog.Logger) *Handlers {
	return &Handlers{codec: codec, logger: log}
}

// Encrypt handles GET /api/obfuscation/encrypt/{id}.
func (h *Handlers) Encrypt(ctx *router.Context) handler.Response {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return response.Error(ErrInvalidID)
	}
	return response.JSON(EncryptResponse{Value: h.codec.Encode(id)})
}

// Decrypt handles GET /api/obfuscation/decrypt/{value}.
// The cause is logged at debug level only; clients see ErrInvalidToken.
func (h *Handlers) Decrypt(ctx *router.Context) handler.Response {
	id, err := h.codec.DecodeString(ctx.Param("value"))
	if err != nil {
		h.logger.DebugContext(ctx, "token rejected", logger.Component("obfuscation"), logger.Error(err))
		return response.Error(ErrInvalidToken)
	}
	return response.JSON(id)
}

// Index handles GET /.
func (h *Handlers) Index(*router.Context) handler.Response {
	return response.String(Banner)
}
