// Package config reads the service settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Port            string
	SecretKey       []byte
	MongoURI        string
	MongoDatabase   string
	StoreBackend    string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionTTL      time.Duration
	CatalogCacheTTL time.Duration
	RequestTimeout  time.Duration
	RateLimit       float64
	RateBurst       int
	CORSOrigins     []string
	SecureCookies   bool
	AdminEmail      string
	AdminPassword   string
}

// Load reads .env (if any) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:          getenv("PORT"),
		MongoURI:      getenv("MONGO_URI"),
		MongoDatabase: getenv("MONGO_DATABASE"),
		StoreBackend:  strings.ToLower(getenv("STORE_BACKEND")),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		AdminEmail:    getenv("ADMIN_EMAIL"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = ":8080"
	} else if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "freshbasket"
	}
	switch cfg.StoreBackend {
	case "":
		cfg.StoreBackend = BackendMongo
	case BackendMongo, BackendMemory:
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND: unknown backend %q", cfg.StoreBackend)
	}

	if secret := getenv("SECRET_KEY"); secret != "" {
		cfg.SecretKey = []byte(secret)
	} else {
		// sessions do not survive a restart without a configured key
		cfg.SecretKey = make([]byte, 24)
		if _, err := rand.Read(cfg.SecretKey); err != nil {
			return Config{}, fmt.Errorf("generate secret key: %w", err)
		}
	}

	var err error
	if cfg.RedisDB, err = intOr(getenv, "REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationOr(getenv, "SESSION_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.CatalogCacheTTL, err = durationOr(getenv, "CATALOG_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationOr(getenv, "REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = intOr(getenv, "RATE_BURST", 10); err != nil {
		return Config{}, err
	}
	cfg.RateLimit = 5
	if v := getenv("RATE_LIMIT"); v != "" {
		if cfg.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT: %w", err)
		}
	}

	cfg.CORSOrigins = []string{"*"}
	if v := getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	if v := getenv("SECURE_COOKIES"); v != "" {
		if cfg.SecureCookies, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("SECURE_COOKIES: %w", err)
		}
	}

	return cfg, nil
}

func intOr(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationOr(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
