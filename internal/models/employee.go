package models

import "time"

// Employee is one canonical row produced by the ETL pipeline. Optional fields
// are pointers; nil means the source value was missing or failed normalization.
// JoinDate is stored as a YYYY-MM-DD string so that lexicographic ordering in
// SQL matches chronological ordering.
type Employee struct {
	ID               uint `gorm:"primaryKey"`
	Name             string
	Email            string `gorm:"index"`
	Phone            *string
	Salary           *int64
	Department       *string
	Region           *string
	JoinDate         *string `gorm:"column:join_date"`
	PerformanceScore *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
