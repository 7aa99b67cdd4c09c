package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	GRPCPort int
	HTTPPort int

	// StorefrontAddr is where the gateway reaches the gRPC services.
	StorefrontAddr string

	// CatalogURL, when set, replaces the built-in catalog with the products
	// served there.
	CatalogURL     string
	CatalogTimeout time.Duration

	CheckoutMaxConcurrent int
}

func Load() Config {
	return Config{
		AppEnv:                getEnv("APP_ENV", "dev"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		HTTPPort:              getEnvInt("HTTP_PORT", 8080),
		GRPCPort:              getEnvInt("GRPC_PORT", 8081),
		StorefrontAddr:        getEnv("STOREFRONT_ADDR", "localhost:8081"),
		CatalogURL:            getEnv("CATALOG_URL", ""),
		CatalogTimeout:        getEnvDuration("CATALOG_TIMEOUT", 5*time.Second),
		CheckoutMaxConcurrent: getEnvInt("CHECKOUT_MAX_CONCURRENT", 10),
	}
}

// TextLogs reports whether LOG_FORMAT asks for text instead of JSON logs.
func (c Config) TextLogs() bool {
	return strings.EqualFold(c.LogFormat, "text")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}

	return d
}
