package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Nutritional Notifications AI Agent API",
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"users_loaded":     len(data.Users),
		"foods_loaded":     len(data.Foods),
		"templates_loaded": len(data.Templates),
	})
}
