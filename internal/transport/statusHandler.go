package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus answers 200 even when the upstream website is unreachable.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	report, err := h.service.Check(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Status check failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
