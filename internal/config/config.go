package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN           string
	ServerPort      string
	OpenAIAPIKey    string
	OpenAIModel     string
	AuthServiceURL  string
	AnalysisTimeout time.Duration
	CookieSecure    bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		AuthServiceURL: os.Getenv("AUTH_SERVICE_URL"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4.1"
	}
	if cfg.AuthServiceURL == "" {
		cfg.AuthServiceURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"
	}

	timeoutSec := 60
	if v := os.Getenv("ANALYSIS_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeoutSec = n
		}
	}
	cfg.AnalysisTimeout = time.Duration(timeoutSec) * time.Second

	cfg.CookieSecure = true
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CookieSecure = b
		}
	}

	return cfg
}
