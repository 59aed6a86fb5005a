package db

import (
	"context"

	"hragent/internal/models"

	"gorm.io/gorm"
)

// Store is the canonical store shared by the ETL pipeline and the verification
// cycles. The employee table is only ever replaced wholesale; the interaction
// log is append-only. The two tables fail independently.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// ReplaceEmployees swaps the entire employee table for the given canonical set
// inside one transaction. Concurrent readers see either the old set or the new
// one, never a mix; on error nothing changes.
func (s *Store) ReplaceEmployees(ctx context.Context, employees []models.Employee) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Employee{}).Error; err != nil {
			return err
		}

		if len(employees) == 0 {
			return nil
		}

		return tx.CreateInBatches(employees, 200).Error
	})
}

// AppendLog appends one audit row. The insert is all-or-nothing and the
// auto-increment ID gives entries a monotonic append order.
func (s *Store) AppendLog(ctx context.Context, entry *models.InteractionLog) error {
	result := gorm.WithResult()
	return gorm.G[models.InteractionLog](s.DB, result).Create(ctx, entry)
}

// Employees returns the canonical set ordered by ID.
func (s *Store) Employees(ctx context.Context, limit int) ([]models.Employee, error) {
	return gorm.G[models.Employee](s.DB).Order("id ASC").Limit(limit).Find(ctx)
}

// RecentLogs returns the newest audit entries first.
func (s *Store) RecentLogs(ctx context.Context, limit int) ([]models.InteractionLog, error) {
	return gorm.G[models.InteractionLog](s.DB).Order("id DESC").Limit(limit).Find(ctx)
}

// CountEmployees reports the size of the canonical set.
func (s *Store) CountEmployees(ctx context.Context) (int64, error) {
	return gorm.G[models.Employee](s.DB).Count(ctx, "id")
}
