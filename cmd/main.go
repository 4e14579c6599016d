package main

import (
	"flag"
	"log"

	"github.com/taalhuis/taalhuis/ai"
	"github.com/taalhuis/taalhuis/api"
	"github.com/taalhuis/taalhuis/api/handlers"
	"github.com/taalhuis/taalhuis/communication"
	"github.com/taalhuis/taalhuis/config"
	"github.com/taalhuis/taalhuis/export"
	"github.com/taalhuis/taalhuis/registry"
)

func main() {
	// Parse command line flags
	addr := flag.String("addr", "", "API listen address (overrides API_ADDR)")
	natsURL := flag.String("nats", "", "NATS URL for lesson events (overrides NATS_URL)")
	model := flag.String("model", "", "Default OpenAI model (overrides OPENAI_MODEL)")
	flag.Parse()

	cfg := config.Load()
	if *addr != "" {
		cfg.APIAddr = *addr
	}
	if *natsURL != "" {
		cfg.NATSURL = *natsURL
	}
	if *model != "" {
		cfg.Model = *model
	}

	client := ai.NewClient(cfg.OpenAIKey, cfg.Model)
	agents := registry.NewWithDefaults(client)

	var messenger *communication.Messenger
	if cfg.NATSURL != "" {
		m, err := communication.NewMessenger(cfg.NATSURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer m.Close()
		if err := m.BridgeToWebSocket(); err != nil {
			log.Fatalf("Failed to subscribe to lesson events: %v", err)
		}
		messenger = m
		log.Printf("Connected to NATS at %s", cfg.NATSURL)
	}

	h := &handlers.Handler{
		Registry:  agents,
		Exporter:  export.New(cfg.ComposioKey),
		Research:  ai.NewResearcher(cfg.SerpAPIKey),
		Messenger: messenger,
		Timeout:   cfg.RequestTimeout,
	}

	router := api.NewRouter(h)
	log.Printf("Starting lesson API on %s", cfg.APIAddr)
	if err := router.Run(cfg.APIAddr); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
