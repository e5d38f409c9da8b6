package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /conditions
func ListConditions(c *gin.Context) {
	c.JSON(http.StatusOK, data.Index.Conditions())
}

// GET /conditions/:condition/nutrients
func ConditionNutrients(c *gin.Context) {
	condition := c.Param("condition")
	entries := data.Index.Entries(condition)
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Condition '" + condition + "' not found"})
		return
	}

	nutrients := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		row := gin.H{"nutrient": e.Nutrient, "weight": e.Weight}
		if e.References != "" {
			row["references"] = e.References
		}
		nutrients = append(nutrients, row)
	}
	c.JSON(http.StatusOK, gin.H{"condition": condition, "nutrients": nutrients})
}
