package routes

import (
	"knowledgebase/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/article")
	{
		articleRoutes.POST("/", articleController.CreateArticle)
		articleRoutes.GET("/", articleController.GetAllArticles)
		articleRoutes.GET("/published", articleController.GetPublishedArticles)
		articleRoutes.GET("/trending", articleController.GetTrendingArticles)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
		articleRoutes.PUT("/:id", articleController.UpdateArticle)
		articleRoutes.DELETE("/:id", articleController.DeleteArticle)
		articleRoutes.POST("/:id/view", articleController.ViewArticle)
		articleRoutes.POST("/:id/like", articleController.LikeArticle)
	}
}
