package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// This file defines the "types" and "payloads" for our async tasks.

// Task type names
const (
	TypeTaskRefreshDataset = "task:refresh_dataset"
	TypeTaskGenerateReport = "task:generate_report"
)

// --- RefreshDataset Task ---

// RefreshDatasetPayload is the data a refresh job needs to run. Nil fields
// fall back to the configured default paths.
type RefreshDatasetPayload struct {
	InputPath  *string `json:"input_path"`
	OutputPath *string `json:"output_path"`
}

// NewRefreshDatasetTask creates a new task for asynq
func NewRefreshDatasetTask(inputPath, outputPath *string) (*asynq.Task, error) {
	payload := RefreshDatasetPayload{
		InputPath:  inputPath,
		OutputPath: outputPath,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskRefreshDataset, payloadBytes), nil
}

// --- GenerateReport Task ---

type GenerateReportPayload struct {
	OutputDir *string `json:"output_dir"`
}

// NewGenerateReportTask creates a new task for asynq
func NewGenerateReportTask(outputDir *string) (*asynq.Task, error) {
	payload := GenerateReportPayload{
		OutputDir: outputDir,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskGenerateReport, payloadBytes), nil
}
