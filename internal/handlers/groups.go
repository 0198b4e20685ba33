package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekurova/postflow/backend/internal/config"
	"github.com/ekurova/postflow/backend/internal/models"
	"github.com/ekurova/postflow/backend/internal/pagination"
)

type GroupHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewGroupHandler(db *gorm.DB, cfg *config.Config) *GroupHandler {
	return &GroupHandler{db: db, cfg: cfg}
}

// Feed returns the group's posts, newest first, with the group's display
// metadata.
func (h *GroupHandler) Feed(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if err := h.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	var total int64
	if err := h.db.Model(&models.Post{}).Where("group_id = ?", group.ID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	page := pagination.New(c.Query("page"), h.cfg.PageSize, total)

	posts := make([]models.Post, 0)
	err := h.db.Preload("Author").
		Where("group_id = ?", group.ID).
		Order("pub_date desc, id desc").
		Offset(page.Offset()).Limit(page.Size).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group": group,
		"posts": posts,
		"page":  page,
	})
}

// Create adds a group. Groups are an administrative resource; any
// authenticated user stands in for the administrator here.
func (h *GroupHandler) Create(c *gin.Context) {
	var input models.CreateGroupRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fieldErrors := make(map[string]string)
	input.Slug = strings.TrimSpace(input.Slug)
	input.Title = strings.TrimSpace(input.Title)
	if input.Slug == "" {
		fieldErrors["slug"] = "This field is required."
	}
	if input.Title == "" {
		fieldErrors["title"] = "This field is required."
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	var existing models.Group
	if err := h.db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group with this slug already exists"})
		return
	}

	group := models.Group{
		Slug:        input.Slug,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := h.db.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	c.JSON(http.StatusCreated, group)
}
