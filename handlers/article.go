package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minwoopark/board-api/service"
)

// ArticleHandler serves the authenticated article endpoints.
type ArticleHandler struct {
	articles *service.ArticleService
}

func NewArticleHandler(articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// Create handles POST /api/articles. The author identity comes from the
// verified token set by AuthRequired, never from the request body.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	username := c.GetString(ctxUsername)
	nickname := c.GetString(ctxNickname)
	if username == "" {
		// AuthRequired did not run; this route is misconfigured.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	articleID, err := h.articles.Create(c.Request.Context(), username, nickname, req.Title, req.Content)
	if err != nil {
		logrus.WithError(err).Error("article creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Article created successfully",
		"article_id": articleID,
	})
}
