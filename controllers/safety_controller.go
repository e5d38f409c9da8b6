package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

// POST /test-safety?user_id=&food_id=
// Runs the three single-food predicates for ad-hoc safety testing.
func TestSafety(c *gin.Context) {
	userID := c.Query("user_id")
	foodID := c.Query("food_id")

	user, ok := data.Users[userID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User " + userID + " not found"})
		return
	}
	food, ok := data.Foods[foodID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food " + foodID + " not found"})
		return
	}

	dietCompatible := utils.DietCompatible(user, food)
	allergens := utils.Allergens(user, food)
	relevant := notifier.Filter().RelevantToConditions(user, food)

	foodKind := "non-vegetarian"
	if food.IsVeg {
		foodKind = "vegetarian"
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"food_id": foodID,
		"safety_analysis": gin.H{
			"diet_compatible":     dietCompatible,
			"diet_reason":         "User prefers " + user.DietPref + ", food is " + foodKind,
			"allergy_safe":        len(allergens) == 0,
			"potential_allergens": allergens,
			"condition_relevant":  relevant,
		},
		"recommendation_eligible": dietCompatible && len(allergens) == 0 && relevant,
	})
}
