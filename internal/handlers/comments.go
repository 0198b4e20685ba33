package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekurova/postflow/backend/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// Create adds a comment to a post and redirects to the post's detail view.
// An invalid submission redirects there too, without creating anything; this
// flow never surfaces field errors separately from success.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	var post models.Post
	if err := h.db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text != "" {
		comment := models.Comment{
			PostID:   post.ID,
			AuthorID: userID,
			Text:     text,
		}
		if err := h.db.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
			return
		}
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}
