package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /users
func ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, data.UserIDs)
}

// GET /users/:user_id
func GetUser(c *gin.Context) {
	userID := c.Param("user_id")
	user, ok := data.Users[userID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User " + userID + " not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
