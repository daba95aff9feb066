package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"stocktracker/internal/quote"
	"stocktracker/internal/symbol"
)

// Version is reported by the service description.
const Version = "1.0.0"

// advertisedSymbols is how many supported symbols the description lists.
const advertisedSymbols = 10

// Quoter resolves raw ticker input to a quote.
//
//go:generate mockgen -package=api_test -destination=mock_quoter_test.go -source=handler.go Quoter
type Quoter interface {
	Fetch(ctx context.Context, raw string) (*quote.Result, error)
}

type Handler struct {
	quotes Quoter
}

func NewHandler(quotes Quoter) *Handler {
	return &Handler{quotes: quotes}
}

// GetStock serves GET /api/stock/:symbol.
func (h *Handler) GetStock(c *gin.Context) {
	res, err := h.quotes.Fetch(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Description is the static service description.
type Description struct {
	Message          string            `json:"message"`
	Version          string            `json:"version"`
	Endpoints        map[string]string `json:"endpoints"`
	SupportedSymbols []string          `json:"supported_symbols"`
	Documentation    string            `json:"documentation"`
}

// Index serves the service description on GET / and GET /api.
func (h *Handler) Index(c *gin.Context) {
	supported := symbol.Supported()
	if len(supported) > advertisedSymbols {
		supported = supported[:advertisedSymbols]
	}
	c.JSON(http.StatusOK, Description{
		Message: "StockTracking API",
		Version: Version,
		Endpoints: map[string]string{
			"GET /api/stock/<symbol>": "Get real-time stock data for a given symbol",
		},
		SupportedSymbols: supported,
		Documentation:    "Enter a stock symbol to get real-time market data",
	})
}

// Health serves GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
