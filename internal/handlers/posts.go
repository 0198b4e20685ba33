package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekurova/postflow/backend/internal/cache"
	"github.com/ekurova/postflow/backend/internal/config"
	"github.com/ekurova/postflow/backend/internal/models"
	"github.com/ekurova/postflow/backend/internal/pagination"
	"github.com/ekurova/postflow/backend/internal/storage"
)

type PostHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	pages cache.Cache
	store storage.Storage
}

func NewPostHandler(db *gorm.DB, cfg *config.Config, pages cache.Cache, store storage.Storage) *PostHandler {
	return &PostHandler{db: db, cfg: cfg, pages: pages, store: store}
}

// Index returns the global feed, newest first. The rendered page is cached
// for the configured TTL; edits made inside that window keep serving the
// stale page until it expires or the cache is cleared.
func (h *PostHandler) Index(c *gin.Context) {
	key := "index:page:" + c.DefaultQuery("page", "1")
	if body, ok := h.pages.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	var total int64
	if err := h.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	page := pagination.New(c.Query("page"), h.cfg.PageSize, total)

	posts := make([]models.Post, 0)
	err := h.db.Preload("Author").Preload("Group").
		Order("pub_date desc, id desc").
		Offset(page.Offset()).Limit(page.Size).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	body, err := json.Marshal(gin.H{"posts": posts, "page": page})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render posts"})
		return
	}

	if err := h.pages.Set(c.Request.Context(), key, body, h.cfg.CacheTTL); err != nil {
		log.Println("page cache write failed:", err)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Detail returns a single post with its comments in creation order and an
// empty comment form. No authentication involved.
func (h *PostHandler) Detail(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := h.db.Preload("Author").Preload("Group").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comments := make([]models.Comment, 0)
	if err := h.db.Where("post_id = ?", post.ID).Preload("Author").Order("created asc, id asc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"form":     gin.H{"text": ""},
	})
}

// CreateForm returns the empty submission form plus group choices.
func (h *PostHandler) CreateForm(c *gin.Context) {
	groups := make([]models.Group, 0)
	h.db.Order("title asc").Find(&groups)

	c.JSON(http.StatusOK, gin.H{
		"form":   gin.H{"text": "", "group": nil, "image": nil},
		"groups": groups,
	})
}

// Create persists a new post owned by the requester and redirects to their
// profile. Validation failures re-render the form errors without persisting
// anything.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	form, fieldErrors := h.bindPostForm(c)

	imageURL, imageErr := h.saveImage(c)
	if imageErr != "" {
		fieldErrors["image"] = imageErr
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors, "form": gin.H{"text": form.Text}})
		return
	}

	var author models.User
	if err := h.db.First(&author, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	post := models.Post{
		Text:     form.Text,
		AuthorID: author.ID,
		GroupID:  form.GroupID,
		Image:    imageURL,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	log.Printf("post %d created by %s: %q", post.ID, author.Username, post.Excerpt(h.cfg.ExcerptLen))

	c.Redirect(http.StatusFound, profilePath(author.Username))
}

// EditForm returns the bound form for the post. Non-owners get the same
// silent redirect to the detail view as on submit.
func (h *PostHandler) EditForm(c *gin.Context) {
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

	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return
	}

	groups := make([]models.Group, 0)
	h.db.Order("title asc").Find(&groups)

	c.JSON(http.StatusOK, gin.H{
		"form":   gin.H{"text": post.Text, "group": post.GroupID, "image": post.Image},
		"groups": groups,
	})
}

// Edit mutates an existing post in place. Only the author may edit; anyone
// else is redirected to the detail view without a mutation and without an
// error.
func (h *PostHandler) Edit(c *gin.Context) {
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

	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return
	}

	form, fieldErrors := h.bindPostForm(c)

	imageURL, imageErr := h.saveImage(c)
	if imageErr != "" {
		fieldErrors["image"] = imageErr
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors, "form": gin.H{"text": form.Text}})
		return
	}

	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": form.GroupID,
	}
	if imageURL != "" {
		updates["image"] = imageURL
	}

	if err := h.db.Model(&post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

type postForm struct {
	Text    string
	GroupID *int
}

func (h *PostHandler) bindPostForm(c *gin.Context) (postForm, map[string]string) {
	var form postForm
	fieldErrors := make(map[string]string)

	form.Text = strings.TrimSpace(c.PostForm("text"))
	if form.Text == "" {
		fieldErrors["text"] = "This field is required."
	}

	if raw := c.PostForm("group"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors["group"] = "Select a valid choice."
		} else {
			var group models.Group
			if err := h.db.First(&group, id).Error; err != nil {
				fieldErrors["group"] = "Select a valid choice."
			} else {
				form.GroupID = &group.ID
			}
		}
	}

	return form, fieldErrors
}

// saveImage stores the optional multipart image and returns its URL. A
// missing file is not an error.
func (h *PostHandler) saveImage(c *gin.Context) (url string, errMsg string) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", ""
	}

	if file.Size > storage.MaxImageSize {
		return "", fmt.Sprintf("File exceeds the %d MB limit.", storage.MaxImageSize/(1<<20))
	}

	src, err := file.Open()
	if err != nil {
		return "", "Failed to read uploaded file."
	}
	defer src.Close()

	url, err = h.store.Save(c.Request.Context(), file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err.Error()
	}
	return url, ""
}
