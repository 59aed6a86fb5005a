package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"hragent/internal/models"

	"gorm.io/gorm"
)

// Reporter computes the descriptive statistics the dashboard and the stats
// report are built from. Aggregates ignore rows where the aggregated field is
// absent.
type Reporter struct {
	DB *gorm.DB
}

type Overview struct {
	TotalEmployees int64   `json:"total_employees"`
	AverageSalary  float64 `json:"average_salary"`
	Departments    int64   `json:"departments"`
	Regions        int64   `json:"regions"`
}

type DepartmentSalary struct {
	Department  string  `json:"department"`
	Headcount   int64   `json:"headcount"`
	TotalSalary int64   `json:"total_salary"`
	AvgSalary   float64 `json:"avg_salary"`
}

type RegionHeadcount struct {
	Region    string `json:"region"`
	Headcount int64  `json:"headcount"`
}

type PerformanceCount struct {
	Department       string `json:"department"`
	PerformanceScore string `json:"performance_score"`
	Count            int64  `json:"count"`
}

func (r *Reporter) Overview(ctx context.Context) (Overview, error) {
	var out Overview
	err := r.DB.WithContext(ctx).Model(&models.Employee{}).
		Select("COUNT(*) AS total_employees, COALESCE(AVG(salary), 0) AS average_salary, COUNT(DISTINCT department) AS departments, COUNT(DISTINCT region) AS regions").
		Scan(&out).Error
	return out, err
}

func (r *Reporter) SalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error) {
	var out []DepartmentSalary
	err := r.DB.WithContext(ctx).Model(&models.Employee{}).
		Select("department, COUNT(*) AS headcount, COALESCE(SUM(salary), 0) AS total_salary, COALESCE(AVG(salary), 0) AS avg_salary").
		Where("department IS NOT NULL").
		Group("department").
		Order("total_salary DESC").
		Scan(&out).Error
	return out, err
}

func (r *Reporter) HeadcountByRegion(ctx context.Context) ([]RegionHeadcount, error) {
	var out []RegionHeadcount
	err := r.DB.WithContext(ctx).Model(&models.Employee{}).
		Select("region, COUNT(*) AS headcount").
		Where("region IS NOT NULL").
		Group("region").
		Order("headcount DESC").
		Scan(&out).Error
	return out, err
}

func (r *Reporter) PerformanceByDepartment(ctx context.Context) ([]PerformanceCount, error) {
	var out []PerformanceCount
	err := r.DB.WithContext(ctx).Model(&models.Employee{}).
		Select("department, performance_score, COUNT(*) AS count").
		Where("department IS NOT NULL AND performance_score IS NOT NULL").
		Group("department, performance_score").
		Order("department, performance_score").
		Scan(&out).Error
	return out, err
}

// WriteCSVReport writes the descriptive statistics as CSV files under dir.
func (r *Reporter) WriteCSVReport(ctx context.Context, dir string) error {
	log.Printf("Generating stats report in %s", dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	overview, err := r.Overview(ctx)
	if err != nil {
		return err
	}
	if err := writeCSVFile(filepath.Join(dir, "overview.csv"),
		[]string{"total_employees", "average_salary", "departments", "regions"},
		[][]string{{
			strconv.FormatInt(overview.TotalEmployees, 10),
			strconv.FormatFloat(overview.AverageSalary, 'f', 2, 64),
			strconv.FormatInt(overview.Departments, 10),
			strconv.FormatInt(overview.Regions, 10),
		}}); err != nil {
		return err
	}

	byDept, err := r.SalaryByDepartment(ctx)
	if err != nil {
		return err
	}
	deptRows := make([][]string, 0, len(byDept))
	for _, d := range byDept {
		deptRows = append(deptRows, []string{
			d.Department,
			strconv.FormatInt(d.Headcount, 10),
			strconv.FormatInt(d.TotalSalary, 10),
			strconv.FormatFloat(d.AvgSalary, 'f', 2, 64),
		})
	}
	if err := writeCSVFile(filepath.Join(dir, "salary_by_department.csv"),
		[]string{"department", "headcount", "total_salary", "avg_salary"}, deptRows); err != nil {
		return err
	}

	byRegion, err := r.HeadcountByRegion(ctx)
	if err != nil {
		return err
	}
	regionRows := make([][]string, 0, len(byRegion))
	for _, reg := range byRegion {
		regionRows = append(regionRows, []string{reg.Region, strconv.FormatInt(reg.Headcount, 10)})
	}
	if err := writeCSVFile(filepath.Join(dir, "employees_by_region.csv"),
		[]string{"region", "headcount"}, regionRows); err != nil {
		return err
	}

	log.Printf("Stats report saved to %s", dir)
	return nil
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
