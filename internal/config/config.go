package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8000"
	defaultCORSOrigins = "http://localhost:1411,http://127.0.0.1:1411"
)

type Config struct {
	Port        string
	LogLevel    string
	CORSOrigins []string
	CatalogPath string
}

// New reads the environment, loading a .env file first when one exists.
// Variables already set in the environment win over the file.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", defaultPort),
		LogLevel:    os.Getenv("LOGLEVEL"),
		CORSOrigins: splitList(getEnv("CORSORIGINS", defaultCORSOrigins)),
		CatalogPath: os.Getenv("CATALOGPATH"),
	}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
