package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"hragent/internal/config"
	"hragent/internal/db"
	"hragent/internal/etl"
	"hragent/internal/report"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	DB     *gorm.DB
	config *config.Config
	store  *db.Store
}

// NewTaskProcessor creates a new TaskProcessor
func NewTaskProcessor(dbConn *gorm.DB, config *config.Config) *TaskProcessor {
	return &TaskProcessor{
		DB:     dbConn,
		config: config,
		store:  db.NewStore(dbConn),
	}
}

// HandleRefreshDatasetTask re-runs the ETL pipeline and swaps the canonical
// employee table. Schema and source errors are permanent for this input, so
// the task is not retried on them.
func (p *TaskProcessor) HandleRefreshDatasetTask(ctx context.Context, t *asynq.Task) error {
	log.Println("Refreshing employee dataset")

	var payload RefreshDatasetPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	inputPath := p.config.InputPath
	if payload.InputPath != nil {
		inputPath = *payload.InputPath
	}
	outputPath := p.config.OutputPath
	if payload.OutputPath != nil {
		outputPath = *payload.OutputPath
	}

	employees, summary, err := etl.Run(inputPath, outputPath, etl.DefaultPipelineConfig())
	if err != nil {
		log.Printf("ETL pipeline failed: %v", err)
		return fmt.Errorf("etl run: %v: %w", err, asynq.SkipRetry)
	}

	if err := p.store.ReplaceEmployees(ctx, employees); err != nil {
		return fmt.Errorf("replace employee table: %w", err)
	}

	log.Printf("Dataset refreshed: %d rows in, %d rows out, %d duplicates dropped",
		summary.RowsIn, summary.RowsOut, summary.DuplicatesDropped)

	return nil
}

// HandleGenerateReportTask writes the descriptive-statistics CSV report.
func (p *TaskProcessor) HandleGenerateReportTask(ctx context.Context, t *asynq.Task) error {
	log.Println("Generating stats report")

	var payload GenerateReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	outputDir := p.config.ReportDir
	if payload.OutputDir != nil {
		outputDir = *payload.OutputDir
	}

	reporter := &report.Reporter{DB: p.DB}
	if err := reporter.WriteCSVReport(ctx, outputDir); err != nil {
		return fmt.Errorf("write stats report: %w", err)
	}

	log.Println("Stats report generated successfully")

	return nil
}
