package routes

import (
	"github.com/Guillo-bit/NutrIA/controllers"
	"github.com/Guillo-bit/NutrIA/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface. CORS stays wide open so the mobile
// client can call from anywhere.
func SetupRouter(analysis *controllers.AnalysisController) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middlewares.RequestID())

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)
	r.POST("/analyze-food", analysis.AnalyzeFood)

	return r
}
