package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ekurova/postflow/backend/internal/config"
	"github.com/ekurova/postflow/backend/internal/models"
	"github.com/ekurova/postflow/backend/internal/pagination"
)

type FollowHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewFollowHandler(db *gorm.DB, cfg *config.Config) *FollowHandler {
	return &FollowHandler{db: db, cfg: cfg}
}

// Index returns the posts of every author the requester follows, newest
// first.
func (h *FollowHandler) Index(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	followed := h.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)

	var total int64
	if err := h.db.Model(&models.Post{}).Where("author_id IN (?)", followed).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	page := pagination.New(c.Query("page"), h.cfg.PageSize, total)

	posts := make([]models.Post, 0)
	err := h.db.Preload("Author").Preload("Group").
		Where("author_id IN (?)", followed).
		Order("pub_date desc, id desc").
		Offset(page.Offset()).Limit(page.Size).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page":  page,
	})
}

// Follow subscribes the requester to an author. Following yourself is a
// no-op, and following someone twice is absorbed by the storage-level
// unique constraint rather than reported as a conflict.
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	var author models.User
	if err := h.db.Where("username = ?", c.Param("username")).First(&author).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if author.ID != userID {
		follow := models.Follow{UserID: userID, AuthorID: author.ID}
		err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
			return
		}
	}

	c.Redirect(http.StatusFound, profilePath(author.Username))
}

// Unfollow removes the subscription if present; unfollowing an author you
// never followed is a no-op.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	var author models.User
	if err := h.db.Where("username = ?", c.Param("username")).First(&author).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.db.Where("user_id = ? AND author_id = ?", userID, author.ID).Delete(&models.Follow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	c.Redirect(http.StatusFound, profilePath(author.Username))
}
