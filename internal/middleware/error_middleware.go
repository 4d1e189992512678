package middleware

import (
	"net/http"

	"bents-gateway/internal/handler"
	"bents-gateway/internal/transport/httpdto"
	"bents-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "An error occurred while processing your request."

// ErrorHandler logs every error a handler attached to the context, with its
// failure class. If the handler wrote nothing, a generic JSON 500 is sent.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		if l != nil {
			log := l.WithContext(c.Request.Context())
			kind := c.GetString(handler.ErrorKindKey)
			for _, e := range c.Errors {
				if e.IsType(gin.ErrorTypeBind) {
					log.Warnf("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, e.Err)
					continue
				}
				if kind == "" {
					kind = handler.ErrorKind(e.Err)
				}
				log.Errorf("%s %s failed (%s): %v", c.Request.Method, c.Request.URL.Path, kind, e.Err)
			}
		}

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(internalErrorMessage))
		}
	}
}

// RecoveryMiddleware turns a panic into the same JSON 500 shape callers see
// for any other failure.
func RecoveryMiddleware(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.NewErrorResponse(internalErrorMessage))
	})
}
