package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"stocktracker/internal/quote"
)

// Router-level codes, in addition to the quote codes.
const (
	CodeEndpointNotFound    = "ENDPOINT_NOT_FOUND"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error         string   `json:"error"`
	Code          string   `json:"code"`
	Details       string   `json:"details,omitempty"`
	AvailableKeys []string `json:"available_keys,omitempty"`
}

func fromQuoteError(e *quote.Error) ErrorResponse {
	return ErrorResponse{
		Error:         e.Message,
		Code:          string(e.Code),
		Details:       e.Details,
		AvailableKeys: e.AvailableKeys,
	}
}

// ErrorMapper renders the last error a handler attached to the context.
// *quote.Error values keep their status; anything else is INTERNAL_ERROR.
func ErrorMapper(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var qerr *quote.Error
		if !errors.As(err, &qerr) {
			logger.ErrorContext(c.Request.Context(), "unclassified handler error",
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err),
			)
			qerr = quote.ErrInternal(err)
		}
		c.AbortWithStatusJSON(qerr.Status, fromQuoteError(qerr))
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "Endpoint not found",
		Code:  CodeEndpointNotFound,
	})
}

func internalServerError() ErrorResponse {
	return ErrorResponse{
		Error: "Internal server error. Please try again later.",
		Code:  CodeInternalServerError,
	}
}
