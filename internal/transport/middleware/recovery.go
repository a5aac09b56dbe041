package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const genericErrorMessage = "Something went wrong"

// Recovery turns a panic into a 500. The panic detail is only echoed to the
// client outside production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		detail := fmt.Sprint(recovered)
		logrus.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
			"panic":      detail,
		}).Error("Unhandled panic")

		message := detail
		if production {
			message = genericErrorMessage
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": message,
		})
	})
}
