package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"knowledgebase/internal/models"
	"knowledgebase/internal/query"
	"knowledgebase/internal/repository"

	"github.com/gin-gonic/gin"
)

const trendingSize = 4

type ArticleController struct {
	repo repository.ArticleRepository
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{repo: repo}
}

// articlePayload is the writable part of an article. The store owns id,
// timestamps and counters on create; on update the counters are taken as-is.
type articlePayload struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Topic       string   `json:"topic"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
	ViewCount   int      `json:"view_count"`
	Likes       int      `json:"likes"`
}

// missingFields reports which required fields are empty, in display order.
func (p *articlePayload) missingFields() []string {
	var missing []string
	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "Title")
	}
	if strings.TrimSpace(p.Content) == "" {
		missing = append(missing, "Content")
	}
	if strings.TrimSpace(p.Topic) == "" {
		missing = append(missing, "Topic")
	}
	return missing
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Create an article; the store assigns id, timestamps and zeroed counters
// @Tags article
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /article [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var payload articlePayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if missing := payload.missingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing required fields",
			"error":   fmt.Sprintf("Please fill in the required fields: %s.", strings.Join(missing, ", ")),
			"fields":  missing,
		})
		return
	}

	article := models.Article{
		Title:       payload.Title,
		Content:     payload.Content,
		Topic:       payload.Topic,
		Tags:        payload.Tags,
		IsPublished: payload.IsPublished,
	}

	if err := ac.repo.Create(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// GetAllArticles godoc
// @Summary Get all articles
// @Description Retrieve the full collection, drafts included (administrative view)
// @Tags article
// @Produce json
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /article [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// GetPublishedArticles godoc
// @Summary Get the published article list
// @Description Published articles filtered by search/topic/tag and sorted, with topic and tag facets
// @Tags article
// @Produce json
// @Param search query string false "Case-insensitive substring match on title or content"
// @Param topic query string false "Exact topic, or All"
// @Param tag query string false "Tag membership, or All"
// @Param sort query string false "date-desc (default), date-asc, title-asc, title-desc, views-desc, views-asc"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /article/published [get]
func (ac *ArticleController) GetPublishedArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	opts := query.Options{
		Search: c.Query("search"),
		Topic:  c.DefaultQuery("topic", query.All),
		Tag:    c.DefaultQuery("tag", query.All),
		SortBy: c.DefaultQuery("sort", query.SortDateDesc),
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"articles": query.Filter(articles, opts),
			"topics":   query.Topics(articles),
			"tags":     query.Tags(articles),
		},
	})
}

// GetTrendingArticles godoc
// @Summary Get trending articles
// @Description Top published articles by view count, independent of active filters
// @Tags article
// @Produce json
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /article/trending [get]
func (ac *ArticleController) GetTrendingArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    query.Trending(articles, trendingSize),
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve article information by ID
// @Tags article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	article, err := ac.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Replace article content; id and creation time are preserved from the stored record
// @Tags article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	var payload articlePayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if missing := payload.missingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing required fields",
			"error":   fmt.Sprintf("Please fill in the required fields: %s.", strings.Join(missing, ", ")),
			"fields":  missing,
		})
		return
	}

	article := models.Article{
		ID:          c.Param("id"),
		Title:       payload.Title,
		Content:     payload.Content,
		Topic:       payload.Topic,
		Tags:        payload.Tags,
		IsPublished: payload.IsPublished,
		ViewCount:   payload.ViewCount,
		Likes:       payload.Likes,
	}

	if err := ac.repo.Update(&article); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Article not found",
				"error":   "No article exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Delete article by ID
// @Tags article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	if err := ac.repo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// ViewArticle godoc
// @Summary Record an article view
// @Description Increment the view counter by one; does not touch the update timestamp
// @Tags article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "View recorded successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id}/view [post]
func (ac *ArticleController) ViewArticle(c *gin.Context) {
	if err := ac.repo.IncrementViewCount(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "View recorded successfully",
		"data":    nil,
	})
}

// LikeArticle godoc
// @Summary Like an article
// @Description Increment the like counter by one; does not touch the update timestamp
// @Tags article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "Like recorded successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id}/like [post]
func (ac *ArticleController) LikeArticle(c *gin.Context) {
	if err := ac.repo.Like(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Like recorded successfully",
		"data":    nil,
	})
}
