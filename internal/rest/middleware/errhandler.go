package middleware

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the standard
// error response shape. Handlers call c.Error(err) and return; the status
// code is derived from the error mark.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
		}
	}
}
