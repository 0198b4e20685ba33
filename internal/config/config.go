package config

import (
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds all process-wide settings. Values come from the environment
// (a .env file is loaded automatically when present).
type Config struct {
	Port string

	// PageSize is the number of posts per page on every listing endpoint.
	PageSize int
	// CacheTTL is how long a rendered home-feed page stays cached.
	CacheTTL time.Duration
	// ExcerptLen is the rune length of human-readable entity labels.
	ExcerptLen int

	JWTSecret []byte

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// StorageBackend selects where post images live: "minio" or "local".
	StorageBackend string
	UploadDir      string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		PageSize:   getenvInt("PAGE_SIZE", 10),
		CacheTTL:   getenvDuration("CACHE_TTL", 20*time.Second),
		ExcerptLen: getenvInt("EXCERPT_LEN", 15),

		JWTSecret: []byte(getenv("JWT_SECRET", "dev-secret-change-me")),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "postflow"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),

		StorageBackend: getenv("STORAGE_BACKEND", "local"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads/media"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "postflow-media"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",
		MinioPublicURL: getenv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
