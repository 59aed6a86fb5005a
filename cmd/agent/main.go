package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"hragent/internal/config"
	"hragent/internal/db"
	"hragent/internal/etl"
	"hragent/internal/pkg/agent"
	"hragent/internal/report"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	inputPath := flag.String("input", cfg.InputPath, "Path to raw CSV file")
	outputPath := flag.String("output", cfg.OutputPath, "Path to output cleaned CSV")
	pipelinePath := flag.String("pipeline-config", "pipeline.yaml", "Path to pipeline yaml config (optional)")
	reportDir := flag.String("report-dir", cfg.ReportDir, "Directory for the stats report")
	query := flag.String("query", "", "Question to ask the HR agent")
	interactive := flag.Bool("interactive", false, "Run agent in interactive mode")
	flag.Parse()

	pipelineCfg, err := etl.LoadPipelineConfig(*pipelinePath)
	if err != nil {
		log.Fatalf("Failed to load pipeline config: %v", err)
	}

	// Phase 1: data engineering
	log.Println("=== Phase 1: Data Engineering ===")
	employees, _, err := etl.Run(*inputPath, *outputPath, pipelineCfg)
	if err != nil {
		log.Printf("ETL pipeline failed: %v", err)
		os.Exit(1)
	}

	dbConn, err := db.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		os.Exit(1)
	}

	store := db.NewStore(dbConn)
	ctx := context.Background()

	if err := store.ReplaceEmployees(ctx, employees); err != nil {
		log.Printf("Failed to load employee table: %v", err)
		os.Exit(1)
	}

	// Phase 2: stats report
	log.Println("=== Phase 2: Stats Report ===")
	reporter := &report.Reporter{DB: dbConn}
	if err := reporter.WriteCSVReport(ctx, *reportDir); err != nil {
		log.Printf("Failed to generate stats report: %v", err)
		os.Exit(1)
	}

	if *query == "" && !*interactive {
		log.Println("No query provided. Pipeline finished successfully.")
		return
	}

	// Phase 3: HR agent
	log.Println("=== Phase 3: HR Agent ===")
	responder, err := agent.NewResponderFromEnv()
	if err != nil {
		log.Printf("Failed to initialize responder: %v", err)
		os.Exit(1)
	}
	auditor, err := agent.NewAuditorFromEnv()
	if err != nil {
		log.Printf("Failed to initialize auditor: %v", err)
		os.Exit(1)
	}

	verifier := &agent.Verifier{
		Responder:        responder,
		Auditor:          auditor,
		Logs:             store,
		ResponderTimeout: cfg.ResponderTimeout,
		AuditorTimeout:   cfg.AuditorTimeout,
	}

	if *query != "" {
		log.Printf("Executing query: %s", *query)
		if !runCycle(ctx, verifier, store, *query) {
			os.Exit(1)
		}
		return
	}

	fmt.Println("\n--- Interactive HR Agent (Type 'exit' to quit) ---")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Query: ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if lower := strings.ToLower(question); lower == "exit" || lower == "quit" {
			break
		}

		runCycle(ctx, verifier, store, question)
	}
}

// runCycle runs one verification cycle and prints the outcome. A responder
// failure is reported as unavailable, not a crash.
func runCycle(ctx context.Context, verifier *agent.Verifier, store *db.Store, question string) bool {
	result, err := verifier.Run(ctx, question, store)
	if err != nil {
		var gatewayErr *agent.GatewayError
		if errors.As(err, &gatewayErr) {
			fmt.Println("Answer unavailable: the responder could not be reached.")
		} else {
			log.Printf("Agent error: %v", err)
		}
		return false
	}

	fmt.Printf("\nAnswer: %s\n", result.Answer)
	switch result.Verdict.Label {
	case agent.VerdictVerifiedCorrect:
		fmt.Println("Verification: verified correct")
	case agent.VerdictFlagged:
		fmt.Printf("Verification: flagged (%s)\n", result.Verdict.Reason)
	default:
		fmt.Println("Verification: unavailable, answer is unaudited")
	}
	if result.LogErr != nil {
		fmt.Println("Warning: interaction could not be recorded.")
	}
	fmt.Println()

	return true
}
