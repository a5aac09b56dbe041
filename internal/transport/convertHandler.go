package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var convertExample = gin.H{
	"action": entity.ActionGifToMP4,
	"url":    "https://example.com/animation.gif",
}

func (h *ConvertHandler) Convert(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Convert handler panicked")
			conversionFailed(c, fmt.Sprint(r))
		}
	}()

	req, err := bindConvertRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}

	resp, err := h.service.Convert(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingAction):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Missing required field: action",
				"example": convertExample,
			})
		case errors.Is(err, entity.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":        "Invalid action",
				"validActions": entity.ValidActions(),
			})
		case errors.Is(err, entity.ErrMissingSource):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either url or file must be provided"})
		default:
			logrus.WithError(err).WithField("action", req.Action).Error("Conversion failed")
			conversionFailed(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func conversionFailed(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "Conversion failed",
		"message": message,
	})
}

// bindConvertRequest accepts a JSON body or a form upload. An empty body is
// not an error; validation reports what is missing. Only a body that is not a
// JSON object fails here.
func bindConvertRequest(c *gin.Context) (*entity.ConvertRequest, error) {
	var req entity.ConvertRequest

	switch c.ContentType() {
	case "multipart/form-data", "application/x-www-form-urlencoded":
		req.Action = c.PostForm("action")
		req.URL = c.PostForm("url")
		if raw := c.PostForm("options"); raw != "" {
			var options map[string]any
			if json.Unmarshal([]byte(raw), &options) == nil {
				req.Options = options
			}
		}
		if file, err := c.FormFile("file"); err == nil {
			req.FileName = file.Filename
		}
		return &req, nil
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &req, nil
}
