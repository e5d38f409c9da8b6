package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AFNANSH552/nutrition-ai-agent/services"
)

// GET /analytics/system-stats
func SystemStats(c *gin.Context) {
	c.JSON(http.StatusOK, services.ComputeSystemStats(data))
}
