package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AFNANSH552/nutrition-ai-agent/services"
)

// POST /evaluate
// Runs the offline evaluation through the live orchestrator; the replay
// shares its recency state, like repeated production calls would.
func Evaluate(c *gin.Context) {
	evaluator := services.NewEvaluator(notifier, data)
	results := evaluator.Run(time.Now().UTC())
	c.JSON(http.StatusOK, results)
}
