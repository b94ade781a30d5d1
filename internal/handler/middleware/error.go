package middleware

import (
	"log/slog"
	"net/http"

	"flashmart/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes an error body for responses that were aborted with a
// status but no payload, so clients always get the flat error shape.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			resp := httperr.New(status, http.StatusText(status))
			c.JSON(resp.Status, resp)
			return
		}
		if len(c.Errors) > 0 {
			resp := httperr.Internal()
			c.JSON(resp.Status, resp)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Internal()
				c.JSON(resp.Status, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
