package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/service"
)

// RESTHandler serves the address index over HTTP.
type RESTHandler struct {
	status   StatusService
	utxos    UtxoService
	txs      TransactionService
	resolver AddressResolver
}

// NewRESTHandler returns a RESTHandler instance.
func NewRESTHandler(
	status StatusService,
	utxos UtxoService,
	txs TransactionService,
	resolver AddressResolver,
) *RESTHandler {
	return &RESTHandler{
		status:   status,
		utxos:    utxos,
		txs:      txs,
		resolver: resolver,
	}
}

// NewRouter builds the gin engine. Paths it does not know are handed to fallback
// when one is given.
func NewRouter(h *RESTHandler, fallback http.Handler, logger *zap.Logger, metrics HTTPMetrics) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.Recovery(), RequestLogger(logger, metrics))

	engine.GET("/status", h.Status)
	address := engine.Group("/a/:address")
	address.GET("/utxos", h.Utxos)
	address.GET("/txs", h.Transactions)

	engine.NoMethod(func(c *gin.Context) {
		respond(c, nil, StatusCode(http.StatusMethodNotAllowed))
	})
	if fallback != nil {
		engine.NoRoute(gin.WrapH(fallback))
	} else {
		engine.NoRoute(func(c *gin.Context) {
			respond(c, nil, StatusCode(http.StatusNotFound))
		})
	}
	return engine
}

// Status compares the index tip with the node.
func (h *RESTHandler) Status(c *gin.Context) {
	report, err := h.status.Status(c.Request.Context())
	if err != nil {
		respond(c, nil, err)
		return
	}
	respond(c, report, nil)
}

// Utxos lists unspent outputs of an address.
func (h *RESTHandler) Utxos(c *gin.Context) {
	scriptID, err := h.resolver.Resolve(c.Param("address"))
	if err != nil {
		respond(c, nil, err)
		return
	}

	utxos, err := h.utxos.Utxos(c.Request.Context(), scriptID, service.ResolveHeight(c.Query("height")))
	if err != nil {
		respond(c, nil, err)
		return
	}
	respond(c, utxos, nil)
}

// Transactions maps the txids touching an address to their node representation.
func (h *RESTHandler) Transactions(c *gin.Context) {
	scriptID, err := h.resolver.Resolve(c.Param("address"))
	if err != nil {
		respond(c, nil, err)
		return
	}

	verbose := c.Query("verbose") != ""
	txs, err := h.txs.Transactions(c.Request.Context(), scriptID, service.ResolveHeight(c.Query("height")), verbose)
	if err != nil {
		respond(c, nil, err)
		return
	}
	respond(c, txs, nil)
}
