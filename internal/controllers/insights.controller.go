package controllers

import (
	"net/http"

	"knowledgebase/internal/insights"
	"knowledgebase/internal/repository"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	repo     repository.ArticleRepository
	analyzer insights.Analyzer
}

func NewInsightsController(repo repository.ArticleRepository, analyzer insights.Analyzer) *InsightsController {
	return &InsightsController{repo: repo, analyzer: analyzer}
}

// GenerateInsights godoc
// @Summary Generate knowledge base insights
// @Description Run a one-shot AI analysis over the current collection and return popular topics and emerging trends
// @Tags insights
// @Produce json
// @Success 200 {object} map[string]interface{} "Insights generated successfully"
// @Failure 500 {object} map[string]interface{} "Failed to generate insights"
// @Router /insights [post]
func (ic *InsightsController) GenerateInsights(c *gin.Context) {
	articles, err := ic.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	summary, err := ic.analyzer.Analyze(c.Request.Context(), articles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate insights",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Insights generated successfully",
		"data":    summary,
	})
}
