package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string

	// Auth
	JWTSecret     string
	TokenTTLHours int

	// Business limits kept configurable
	MaxActiveApplications int
	MaxUploadBytes        int64

	// Uploads
	StorageDriver string // "disk" or "s3"
	UploadDir     string
	S3Region      string
	S3Bucket      string
	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string
	S3PublicURL   string

	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string

	// Rate limiting
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalEnabled   bool
	RateLimitGlobalThreshold int

	// Schema management
	MigrateOnStart bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; production sets real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "4444"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),

		MaxActiveApplications: getEnvInt("MAX_ACTIVE_APPLICATIONS", 10),
		MaxUploadBytes:        int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),

		StorageDriver: getEnv("STORAGE_DRIVER", "disk"),
		UploadDir:     getEnv("UPLOAD_DIR", "./public"),
		S3Region:      getEnv("S3_REGION", ""),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3AccessKey:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:   getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		S3PublicURL:   strings.TrimRight(getEnv("S3_PUBLIC_URL", ""), "/"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalEnabled:   getEnvBool("RATE_LIMIT_GLOBAL_ENABLED", false),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not survive restarts.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
