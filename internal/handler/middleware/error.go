package middleware

import (
	"log/slog"
	"net/http"

	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			resp, ok := err.Meta.(httperr.Response)
			if !ok {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"error", err.Err.Error(),
					"stack", errs.ExtractStackLines(err.Err, stackLines),
				)
			}
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
