package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Uploads   UploadsConfig
	Exports   ExportsConfig
	FeedCache FeedCacheConfig
	School    SchoolConfig
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// UploadsConfig controls multipart file uploads.
type UploadsConfig struct {
	Dir              string
	MaxFileSizeBytes int64
}

// ExportsConfig controls where generated notice documents are written.
type ExportsConfig struct {
	Dir string
}

// FeedCacheConfig toggles caching of the public notice feed.
type FeedCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// SchoolConfig holds school presentation and enrollment defaults.
type SchoolConfig struct {
	Name            string
	StudentIDPrefix string
	DefaultRegion   string
}

// Load reads configuration from the environment, honoring an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env:       strings.ToLower(v.GetString("ENV")),
		Port:      v.GetInt("PORT"),
		APIPrefix: v.GetString("API_PREFIX"),
	}

	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, errors.New("ENV must be development or production")
	}

	cfg.Mongo = MongoConfig{
		URI:            v.GetString("MONGODB_URI"),
		Database:       v.GetString("MONGODB_DATABASE"),
		ConnectTimeout: parseDuration(v.GetString("MONGODB_CONNECT_TIMEOUT"), 10*time.Second),
	}
	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Uploads = UploadsConfig{
		Dir:              v.GetString("UPLOADS_DIR"),
		MaxFileSizeBytes: v.GetInt64("UPLOAD_MAX_FILE_SIZE"),
	}

	cfg.Exports = ExportsConfig{
		Dir: v.GetString("EXPORTS_DIR"),
	}

	cfg.FeedCache = FeedCacheConfig{
		Enabled: v.GetBool("ENABLE_FEED_CACHE"),
		TTL:     parseDuration(v.GetString("FEED_CACHE_TTL"), 5*time.Minute),
	}

	cfg.School = SchoolConfig{
		Name:            v.GetString("SCHOOL_NAME"),
		StudentIDPrefix: v.GetString("STUDENT_ID_PREFIX"),
		DefaultRegion:   v.GetString("DEFAULT_REGION"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "ebegrace_zion")
	v.SetDefault("MONGODB_CONNECT_TIMEOUT", "10s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("UPLOADS_DIR", "./public/uploads")
	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 5*1024*1024)

	v.SetDefault("EXPORTS_DIR", "./exports")

	v.SetDefault("ENABLE_FEED_CACHE", false)
	v.SetDefault("FEED_CACHE_TTL", "5m")

	v.SetDefault("SCHOOL_NAME", "Ebegrace Zion Academy")
	v.SetDefault("STUDENT_ID_PREFIX", "EZ")
	v.SetDefault("DEFAULT_REGION", "Greater Accra")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
