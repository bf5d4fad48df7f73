package config

import (
	"testing"
	"time"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Port != ":8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" || cfg.MongoDatabase != "freshbasket" {
		t.Errorf("mongo defaults = %q %q", cfg.MongoURI, cfg.MongoDatabase)
	}
	if cfg.StoreBackend != BackendMongo {
		t.Errorf("StoreBackend = %q", cfg.StoreBackend)
	}
	if len(cfg.SecretKey) != 24 {
		t.Errorf("expected a generated 24 byte secret, got %d bytes", len(cfg.SecretKey))
	}
	if cfg.SessionTTL != 7*24*time.Hour || cfg.RequestTimeout != 10*time.Second {
		t.Errorf("durations = %v %v", cfg.SessionTTL, cfg.RequestTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":           "9000",
		"SECRET_KEY":     "s3cret",
		"STORE_BACKEND":  "Memory",
		"REDIS_DB":       "2",
		"SESSION_TTL":    "30m",
		"RATE_LIMIT":     "0.5",
		"CORS_ORIGINS":   "https://a.example, https://b.example",
		"SECURE_COOKIES": "true",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Port != ":9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if string(cfg.SecretKey) != "s3cret" {
		t.Errorf("SecretKey = %q", cfg.SecretKey)
	}
	if cfg.StoreBackend != BackendMemory || cfg.RedisDB != 2 {
		t.Errorf("backend=%q db=%d", cfg.StoreBackend, cfg.RedisDB)
	}
	if cfg.SessionTTL != 30*time.Minute || cfg.RateLimit != 0.5 {
		t.Errorf("ttl=%v rate=%v", cfg.SessionTTL, cfg.RateLimit)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.SecureCookies {
		t.Errorf("SecureCookies not set")
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"STORE_BACKEND": "dynamo"}},
		{name: "bad duration", env: map[string]string{"SESSION_TTL": "forever"}},
		{name: "bad int", env: map[string]string{"REDIS_DB": "zero"}},
		{name: "bad bool", env: map[string]string{"SECURE_COOKIES": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envOf(tt.env)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
