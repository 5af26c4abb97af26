package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config returns a single value from the environment, loading .env once if present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// App holds every runtime setting. Built once in main and passed down;
// nothing reads the environment after startup.
type App struct {
	Port            string
	ServiceKey      string // Firebase service account JSON
	BucketName      string
	RedisAddr       string
	AllowOrigins    string
	ShopBaseURL     string
	DefaultPageSize int
	ListingCacheTTL int // seconds
}

func Load() App {
	godotenv.Load(".env")

	cfg := App{
		Port:            os.Getenv("PORT"),
		ServiceKey:      os.Getenv("FIREBASE_SERVICE_KEY"),
		BucketName:      os.Getenv("STORAGE_BUCKET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		AllowOrigins:    os.Getenv("ALLOW_ORIGINS"),
		ShopBaseURL:     os.Getenv("SHOP_BASE_URL"),
		DefaultPageSize: 20,
		ListingCacheTTL: 30,
	}
	if cfg.Port == "" {
		cfg.Port = "8002"
	}
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "*"
	}
	if v := os.Getenv("DEFAULT_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultPageSize = n
		}
	}
	if v := os.Getenv("LISTING_CACHE_TTL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ListingCacheTTL = n
		}
	}
	return cfg
}
