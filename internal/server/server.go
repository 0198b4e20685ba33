package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekurova/postflow/backend/internal/cache"
	"github.com/ekurova/postflow/backend/internal/config"
	"github.com/ekurova/postflow/backend/internal/database"
	"github.com/ekurova/postflow/backend/internal/handlers"
	"github.com/ekurova/postflow/backend/internal/middleware"
	"github.com/ekurova/postflow/backend/internal/storage"
)

type Server struct {
	cfg     *config.Config
	db      database.Service
	handler *handlers.Handler
}

// New wires a server from already-constructed dependencies. Tests use this
// with an in-memory cache and a temp-dir storage backend.
func New(cfg *config.Config, db database.Service, gormDB *gorm.DB, pages cache.Cache, store storage.Storage) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		handler: handlers.NewHandler(gormDB, cfg, pages, store),
	}
}

// NewHTTPServer builds the production server: Postgres, Redis page cache and
// the configured image storage backend.
func NewHTTPServer() *http.Server {
	cfg := config.Load()

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	pages := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	var store storage.Storage
	switch cfg.StorageBackend {
	case "minio":
		store, err = storage.NewMinio(
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, cfg.MinioPublicURL, cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
	default:
		store = storage.NewLocal(cfg.UploadDir)
	}

	s := New(cfg, db, db.GetDB(), pages, store)
	router := s.RegisterRoutes()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// Locally stored post images
	if s.cfg.StorageBackend != "minio" {
		r.Static("/media", s.cfg.UploadDir)
	}

	// Auth routes (public)
	r.POST("/auth/signup", s.handler.Auth.Signup)
	r.POST("/auth/login", s.handler.Auth.Login)
	r.GET("/auth/login", s.handler.Auth.LoginForm)

	// Public feeds and reads
	r.GET("/", s.handler.Post.Index)
	r.GET("/group/:slug/", s.handler.Group.Feed)
	r.GET("/posts/:id/", s.handler.Post.Detail)
	r.GET("/profile/:username/", middleware.OptionalAuth(s.cfg.JWTSecret), s.handler.Profile.Feed)

	// Protected routes (authentication required)
	protected := r.Group("")
	protected.Use(middleware.Auth(s.cfg.JWTSecret))
	{
		protected.GET("/auth/me", s.handler.Auth.GetMe)

		protected.GET("/create/", s.handler.Post.CreateForm)
		protected.POST("/create/", s.handler.Post.Create)
		protected.GET("/posts/:id/edit/", s.handler.Post.EditForm)
		protected.POST("/posts/:id/edit/", s.handler.Post.Edit)
		protected.POST("/posts/:id/comment/", s.handler.Comment.Create)

		protected.POST("/group/", s.handler.Group.Create)

		protected.GET("/follow/", s.handler.Follow.Index)
		protected.POST("/profile/:username/follow/", s.handler.Follow.Follow)
		protected.POST("/profile/:username/unfollow/", s.handler.Follow.Unfollow)
	}

	return r
}
