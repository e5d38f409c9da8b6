package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

type generateReq struct {
	UserID  string `json:"user_id" binding:"required"`
	Trigger string `json:"trigger"`
	Now     string `json:"now"`
}

// POST /generate
func Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if _, ok := data.Users[req.UserID]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User " + req.UserID + " not found"})
		return
	}

	now := time.Now().UTC()
	if req.Now != "" {
		parsed, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid timestamp format. Use ISO format like '2023-09-03T17:30:00+05:30'",
			})
			return
		}
		now = parsed
	}

	bundles := notifier.Generate(req.UserID, now)
	if req.Trigger != "" {
		filtered := bundles[:0]
		for _, b := range bundles {
			if b.Trigger == req.Trigger {
				filtered = append(filtered, b)
			}
		}
		bundles = filtered
	}
	if bundles == nil {
		bundles = []models.NotificationBundle{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"user_id":             req.UserID,
		"generated_at":        now.Format(time.RFC3339),
		"notifications_count": len(bundles),
		"notifications":       bundles,
	})
}

// GET /triggers/:user_id?now=
func ActiveTriggers(c *gin.Context) {
	userID := c.Param("user_id")
	user, ok := data.Users[userID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User " + userID + " not found"})
		return
	}

	now := time.Now().UTC()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp format"})
			return
		}
		now = parsed
	}

	triggers := notifier.Resolver().Resolve(user, now)
	if triggers == nil {
		triggers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"timestamp":       now.Format(time.RFC3339),
		"active_triggers": triggers,
		"trigger_count":   len(triggers),
	})
}

// GET /demo/:user_id — canned scenarios across the day.
func Demo(c *gin.Context) {
	userID := c.Param("user_id")
	if _, ok := data.Users[userID]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User " + userID + " not found"})
		return
	}

	scenarios := []struct {
		label  string
		hour   int
		minute int
	}{
		{"Morning", 8, 0},
		{"Pre-lunch", 12, 30},
		{"Evening", 17, 30},
		{"Post-workout", 19, 0},
	}

	base := time.Now().UTC()
	results := make([]gin.H, 0, len(scenarios))
	for _, sc := range scenarios {
		at := time.Date(base.Year(), base.Month(), base.Day(), sc.hour, sc.minute, 0, 0, time.UTC)
		bundles := notifier.Generate(userID, at)
		if bundles == nil {
			bundles = []models.NotificationBundle{}
		}
		results = append(results, gin.H{
			"scenario":      sc.label,
			"time":          at.Format(time.RFC3339),
			"notifications": bundles,
			"count":         len(bundles),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"demo_scenarios":  results,
		"total_scenarios": len(scenarios),
	})
}

// POST /simulate-week?user_ids=u001&user_ids=u002
func SimulateWeek(c *gin.Context) {
	userIDs := c.QueryArray("user_ids")
	if len(userIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_ids required"})
		return
	}
	var invalid []string
	for _, id := range userIDs {
		if _, ok := data.Users[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user IDs", "invalid_user_ids": invalid})
		return
	}

	base := time.Now().UTC()
	testHours := []int{7, 12, 17, 19, 21}
	results := make(map[string]gin.H, len(userIDs))
	grandTotal := 0

	for _, userID := range userIDs {
		var weekBundles []models.NotificationBundle
		dailyCounts := make([]int, 0, 7)

		for day := 0; day < 7; day++ {
			date := base.AddDate(0, 0, day)
			dayCount := 0
			for _, hour := range testHours {
				at := time.Date(date.Year(), date.Month(), date.Day(), hour, 30, 0, 0, time.UTC)
				bundles := notifier.Generate(userID, at)
				dayCount += len(bundles)
				weekBundles = append(weekBundles, bundles...)
			}
			dailyCounts = append(dailyCounts, dayCount)
		}

		foods := make(map[string]bool)
		triggerFreq := make(map[string]int)
		for _, b := range weekBundles {
			triggerFreq[b.Trigger]++
			for _, item := range b.Items {
				foods[item.FoodID] = true
			}
		}
		grandTotal += len(weekBundles)
		results[userID] = gin.H{
			"total_notifications":     len(weekBundles),
			"daily_breakdown":         dailyCounts,
			"unique_foods":            len(foods),
			"trigger_frequency":       triggerFreq,
			"avg_daily_notifications": float64(len(weekBundles)) / 7,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"simulation_period": "7 days",
		"simulated_users":   len(userIDs),
		"results":           results,
		"summary": gin.H{
			"total_notifications":        grandTotal,
			"avg_notifications_per_user": float64(grandTotal) / float64(len(userIDs)),
		},
	})
}
