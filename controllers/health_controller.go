package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Nutrition Analysis API is running",
		"version": apiVersion,
	})
}

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrition-analysis-api",
	})
}
