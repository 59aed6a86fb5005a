package main

import (
	"fmt"
	"log"

	"hragent/internal/config"
	"hragent/internal/db"
	"hragent/internal/pkg/agent"
	"hragent/internal/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := db.NewStore(dbConn)

	responder := agent.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.ResponderModel)
	auditor := agent.NewOpenAIAuditor(cfg.OpenAIAPIKey, cfg.AuditorModel)
	verifier := &agent.Verifier{
		Responder:        responder,
		Auditor:          auditor,
		Logs:             store,
		ResponderTimeout: cfg.ResponderTimeout,
		AuditorTimeout:   cfg.AuditorTimeout,
	}

	router := routes.SetupRouter(store, verifier)

	serverAddr := fmt.Sprintf(":%s", "8080")
	log.Printf("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
