package db

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"
)

// Snapshot serializes the canonical employee table as CSV for a responder
// prompt, truncated to at most byteLimit bytes on a row boundary. Satisfies
// the agent.DataHandle contract.
func (s *Store) Snapshot(ctx context.Context, byteLimit int) (string, error) {
	employees, err := s.Employees(ctx, -1)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writer := csv.NewWriter(&b)

	header := []string{"Name", "Email", "Phone", "Salary", "Department", "Region", "Join_Date", "Performance_Score"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, emp := range employees {
		record := []string{
			emp.Name,
			emp.Email,
			strDeref(emp.Phone),
			salaryString(emp.Salary),
			strDeref(emp.Department),
			strDeref(emp.Region),
			strDeref(emp.JoinDate),
			strDeref(emp.PerformanceScore),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}

		writer.Flush()
		if byteLimit > 0 && b.Len() > byteLimit {
			break
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return b.String(), nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func salaryString(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
