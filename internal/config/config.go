package config

import (
	"log"
	"os"
)

type Config struct {
	AppPort string
	DataDir string

	PostgresDSN string
	RedisAddr   string

	CronSpec string

	OllamaHost  string
	OllamaModel string
}

func Load() *Config {
	cfg := &Config{
		AppPort:     getEnv("APP_PORT", "9000"),
		DataDir:     getEnv("DATA_DIR", "data"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=nepsepulse password=nepsepulse dbname=nepsepulse port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		CronSpec:    getEnv("CRON_SPEC", "0 */6 * * *"),
		OllamaHost:  getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "gemma3:4b"),
	}

	log.Printf("config loaded: port=%s data=%s cron=%s model=%s", cfg.AppPort, cfg.DataDir, cfg.CronSpec, cfg.OllamaModel)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
