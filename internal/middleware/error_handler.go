package middleware

import (
	"github.com/gin-gonic/gin"

	"parttimepro/pkg/errors"
)

// ErrorHandler renders errors that handlers attach with c.Error, mapping
// them to HTTP status codes. Handlers that use it return without writing a
// response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			statusCode := errors.HTTPStatusFromError(err.Err)
			c.JSON(statusCode, gin.H{
				"error": err.Error(),
			})
		}
	}
}
