package config

import "os"

type Config struct {
	Port            string
	DatabaseURL     string // empty selects the embedded SQLite store
	SQLitePath      string
	RedisURL        string
	SecretKey       string
	AdminSetupToken string
	LogLevel        string
	Environment     string
	CORSOrigins     string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "instance/trustmebro.db"),
		RedisURL:        os.Getenv("REDIS_URL"),
		SecretKey:       getEnv("SECRET_KEY", "dev-only-secret"),
		AdminSetupToken: getEnv("ADMIN_SETUP_TOKEN", "trustmebro-setup-2024"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
	}
}

// Production reports whether the app runs with production hardening
// (secure session cookies).
func (c *Config) Production() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
