package etl

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"hragent/internal/metrics"
	"hragent/internal/models"
)

// Summary reports what one pipeline run did. Dropped duplicates are counted,
// not returned.
type Summary struct {
	RowsIn            int
	RowsOut           int
	DuplicatesDropped int
}

// canonicalColumns is the fixed output order; it keeps runs byte-identical.
var canonicalColumns = []string{
	"Name", "Email", "Phone", "Salary", "Department", "Region", "Join_Date", "Performance_Score",
}

// Run executes the ETL pipeline:
// 1. Load data
// 2. Validate schema
// 3. Deduplicate
// 4. Clean & transform
// 5. Save data
// The run is deterministic: the same input and config produce byte-identical
// output. Failures publish nothing.
func Run(inputPath, outputPath string, cfg PipelineConfig) ([]models.Employee, Summary, error) {
	log.Printf("Starting ETL pipeline. Input: %s", inputPath)

	headers, rows, err := readCSV(inputPath)
	if err != nil {
		return nil, Summary{}, err
	}
	log.Printf("Loaded %d rows.", len(rows))

	if err := CheckSchema(headers, cfg.RequiredColumns); err != nil {
		return nil, Summary{}, err
	}

	kept, dropped := Deduplicate(rows, cfg.DedupeColumn)
	log.Printf("Dropped %d duplicate rows. New count: %d", dropped, len(kept))

	employees := make([]models.Employee, 0, len(kept))
	for _, row := range kept {
		employees = append(employees, buildEmployee(row, cfg))
	}

	if outputPath != "" {
		if err := writeCSV(outputPath, employees); err != nil {
			return nil, Summary{}, err
		}
		log.Printf("Pipeline finished. Cleaned data saved to %s", outputPath)
	}

	summary := Summary{RowsIn: len(rows), RowsOut: len(employees), DuplicatesDropped: dropped}

	metrics.ETLRuns.Inc()
	metrics.ETLDuplicatesDropped.Add(float64(dropped))

	return employees, summary, nil
}

func buildEmployee(row RawRecord, cfg PipelineConfig) models.Employee {
	department, region := SplitComposite(row[cfg.CompositeColumn], cfg.CompositeDelimiter)

	emp := models.Employee{
		Name:   row["Name"],
		Email:  row[cfg.DedupeColumn],
		Phone:  FormatPhoneNumber(row[cfg.PhoneColumn]),
		Salary: CleanSalary(row[cfg.SalaryColumn]),
		Region: region,
	}

	if department != "" {
		emp.Department = &department
	}
	if date := NormalizeDate(row[cfg.DateColumn]); date != nil {
		emp.JoinDate = date
	}
	if score := row["Performance_Score"]; score != "" {
		// Opaque categorical label, passed through unmodified.
		emp.PerformanceScore = &score
	}

	return emp
}

func readCSV(path string) ([]string, []RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &SourceError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil, &SourceError{Path: path, Err: fmt.Errorf("empty file")}
	}

	headers := records[0]
	rows := make([]RawRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(RawRecord, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

func writeCSV(path string, employees []models.Employee) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(canonicalColumns); err != nil {
		return err
	}

	for _, emp := range employees {
		record := []string{
			emp.Name,
			emp.Email,
			deref(emp.Phone),
			formatSalary(emp.Salary),
			deref(emp.Department),
			deref(emp.Region),
			deref(emp.JoinDate),
			deref(emp.PerformanceScore),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatSalary(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
