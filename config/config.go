package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultAPIAddr = ":3000"
	defaultTimeout = 90 * time.Second
)

// Config carries every credential and knob the service needs for a session.
// It is built once at startup and handed to constructors explicitly.
type Config struct {
	OpenAIKey      string
	ComposioKey    string
	SerpAPIKey     string
	Model          string
	APIAddr        string
	NATSURL        string
	RequestTimeout time.Duration
}

// Load reads .env (if present) and the environment into a Config.
// Only OPENAI_API_KEY is required for lessons; the rest degrade gracefully.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ComposioKey:    os.Getenv("COMPOSIO_API_KEY"),
		SerpAPIKey:     os.Getenv("SERP_API_KEY"),
		Model:          os.Getenv("OPENAI_MODEL"),
		APIAddr:        os.Getenv("API_ADDR"),
		NATSURL:        os.Getenv("NATS_URL"),
		RequestTimeout: defaultTimeout,
	}

	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, lesson requests will fail")
	}
	if cfg.ComposioKey == "" {
		log.Println("Warning: COMPOSIO_API_KEY not set, document export will be disabled")
	}
	if cfg.SerpAPIKey == "" {
		log.Println("Warning: SERP_API_KEY not set, topic research will be disabled")
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.APIAddr == "" {
		cfg.APIAddr = defaultAPIAddr
	}
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.RequestTimeout = d
		} else {
			log.Printf("Warning: invalid REQUEST_TIMEOUT %q, using %s", raw, defaultTimeout)
		}
	}

	return cfg
}
