package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotewall/internal/adapters/http/dto"
)

// noRoute answers unknown paths with the JSON error envelope.
func noRoute(c *gin.Context) {
	dto.Abort(c, dto.ErrorCodeNotFound, "route "+c.Request.URL.Path+" not found")
}

// noMethod answers known paths called with the wrong method.
func noMethod(c *gin.Context) {
	dto.Abort(c, dto.ErrorCodeMethodNotAllowed, "method "+c.Request.Method+" not allowed")
}
