package routes

import (
	"knowledgebase/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterInsightsRoutes(router *gin.Engine, insightsController *controllers.InsightsController) {
	router.POST("/insights", insightsController.GenerateInsights)
}
