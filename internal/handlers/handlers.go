package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekurova/postflow/backend/internal/cache"
	"github.com/ekurova/postflow/backend/internal/config"
	"github.com/ekurova/postflow/backend/internal/storage"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Group   *GroupHandler
	Profile *ProfileHandler
	Comment *CommentHandler
	Follow  *FollowHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, cfg *config.Config, pages cache.Cache, store storage.Storage) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db, cfg),
		Post:    NewPostHandler(db, cfg, pages, store),
		Group:   NewGroupHandler(db, cfg),
		Profile: NewProfileHandler(db, cfg),
		Comment: NewCommentHandler(db),
		Follow:  NewFollowHandler(db, cfg),
	}
}

func currentUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}

func postDetailPath(id int) string {
	return "/posts/" + strconv.Itoa(id) + "/"
}
