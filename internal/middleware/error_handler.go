package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simpletrade/blotter/internal/domain/dto"
	"github.com/simpletrade/blotter/internal/logger"
)

// ErrorHandler drains errors attached to the Gin context by handlers
// (via c.Error) after the chain has run. If a handler reported an error
// but never wrote a response, it answers 500 with the standardized body.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	for _, e := range c.Errors {
		logger.L().Error().Err(e.Err).Str("path", c.Request.URL.Path).Msg("handler error")
	}

	if !c.Writer.Written() {
		last := c.Errors.Last()
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
	}
}

// AbortWithError attaches the error to the context and writes the
// standardized error body with the given status in one step.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
