package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidDuration error = errors.New("invalid duration value")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	jwtSecretEnvKey     = "JWT_SECRET"
	jwtAlgorithmEnvKey  = "JWT_ALGORITHM"
	accessExpiryEnvKey  = "ACCESS_TOKEN_EXPIRY"
	refreshExpiryEnvKey = "REFRESH_TOKEN_EXPIRY"
	corsOriginsEnvKey   = "CORS_ORIGINS"
	adminUserEnvKey     = "ADMIN_USERNAME"
	adminPassEnvKey     = "ADMIN_PASSWORD"
)

const (
	defaultPort          = "8080"
	defaultAlgorithm     = "HS256"
	defaultAccessExpiry  = 30 * time.Minute
	defaultRefreshExpiry = 7 * 24 * time.Hour
	defaultCORSOrigins   = "http://localhost:3000"
)

type App struct {
	Port               string
	DBConnectionURL    string
	JWTSecret          string
	JWTAlgorithm       string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	CORSOrigins        []string
	AdminUsername      string
	AdminPassword      string
}

func NewApp() (App, error) {

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	accessExpiry, err := durationOrDefault(accessExpiryEnvKey, defaultAccessExpiry)
	if err != nil {
		return App{}, err
	}

	refreshExpiry, err := durationOrDefault(refreshExpiryEnvKey, defaultRefreshExpiry)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:               valueOrDefault(apiPortEnvKey, defaultPort),
		DBConnectionURL:    dbConn,
		JWTSecret:          jwtSecret,
		JWTAlgorithm:       valueOrDefault(jwtAlgorithmEnvKey, defaultAlgorithm),
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
		CORSOrigins:        splitOrigins(valueOrDefault(corsOriginsEnvKey, defaultCORSOrigins)),
		AdminUsername:      os.Getenv(adminUserEnvKey),
		AdminPassword:      os.Getenv(adminPassEnvKey),
	}, nil
}

func valueOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidDuration, key, val)
	}
	return dur, nil
}

func splitOrigins(val string) []string {
	parts := strings.Split(val, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
