package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekurova/postflow/backend/internal/config"
	"github.com/ekurova/postflow/backend/internal/models"
	"github.com/ekurova/postflow/backend/internal/pagination"
)

type ProfileHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewProfileHandler(db *gorm.DB, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{db: db, cfg: cfg}
}

// Feed returns a user's posts, newest first, plus a following flag telling
// whether the requester already follows this profile. The flag is always
// false for anonymous requesters and for one's own profile.
func (h *ProfileHandler) Feed(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var total int64
	if err := h.db.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	page := pagination.New(c.Query("page"), h.cfg.PageSize, total)

	posts := make([]models.Post, 0)
	err := h.db.Preload("Group").
		Where("author_id = ?", user.ID).
		Order("pub_date desc, id desc").
		Offset(page.Offset()).Limit(page.Size).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	following := false
	if requesterID, ok := currentUserID(c); ok && requesterID != user.ID {
		var follow models.Follow
		err := h.db.Where("user_id = ? AND author_id = ?", requesterID, user.ID).First(&follow).Error
		following = err == nil
	}

	var followerCount, followingCount int64
	h.db.Model(&models.Follow{}).Where("author_id = ?", user.ID).Count(&followerCount)
	h.db.Model(&models.Follow{}).Where("user_id = ?", user.ID).Count(&followingCount)

	c.JSON(http.StatusOK, gin.H{
		"author": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
		"posts":           posts,
		"page":            page,
		"following":       following,
		"follower_count":  followerCount,
		"following_count": followingCount,
	})
}
