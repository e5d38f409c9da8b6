package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /templates
func Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates":      data.Templates,
		"facts":          data.Facts,
		"template_count": len(data.Templates),
	})
}
