package etl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PipelineConfig names the columns the pipeline operates on. The zero value is
// not usable; start from DefaultPipelineConfig.
type PipelineConfig struct {
	RequiredColumns    []string `yaml:"required_columns"`
	DedupeColumn       string   `yaml:"dedupe_column"`
	PhoneColumn        string   `yaml:"phone_column"`
	SalaryColumn       string   `yaml:"salary_column"`
	DateColumn         string   `yaml:"date_column"`
	CompositeColumn    string   `yaml:"composite_column"`
	CompositeDelimiter string   `yaml:"composite_delimiter"`
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		RequiredColumns:    []string{"Email", "Phone", "Department_Region", "Salary"},
		DedupeColumn:       "Email",
		PhoneColumn:        "Phone",
		SalaryColumn:       "Salary",
		DateColumn:         "Join_Date",
		CompositeColumn:    "Department_Region",
		CompositeDelimiter: "-",
	}
}

// LoadPipelineConfig overlays a yaml file on the defaults. A missing file is
// not an error; the defaults match the standard HR export.
func LoadPipelineConfig(path string) (PipelineConfig, error) {
	cfg := DefaultPipelineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read pipeline config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse pipeline config %s: %w", path, err)
	}

	return cfg, nil
}
