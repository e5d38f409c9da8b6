package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

// GET /foods?veg_only=&limit=
func ListFoods(c *gin.Context) {
	vegOnly := c.Query("veg_only") == "true"
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	foods := make([]*models.Food, 0, limit)
	for _, id := range data.FoodOrder {
		if len(foods) >= limit {
			break
		}
		food := data.Foods[id]
		if vegOnly && !food.IsVeg {
			continue
		}
		foods = append(foods, food)
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/:food_id
func GetFood(c *gin.Context) {
	foodID := c.Param("food_id")
	food, ok := data.Foods[foodID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food " + foodID + " not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}
