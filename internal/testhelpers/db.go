package testhelpers

import (
	"hragent/internal/models"

	g "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens a fresh in-memory sqlite database with the schema
// migrated. Each call returns an isolated database.
func OpenTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	g.Expect(err).NotTo(g.HaveOccurred())

	g.Expect(db.AutoMigrate(&models.Employee{}, &models.InteractionLog{})).To(g.Succeed())

	return db
}

// CleanupDB empties every application table.
func CleanupDB(db *gorm.DB) {
	var tables []string

	err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'").Scan(&tables).Error
	g.Expect(err).NotTo(g.HaveOccurred())

	for _, table := range tables {
		err := db.Exec("DELETE FROM \"" + table + "\"").Error
		g.Expect(err).NotTo(g.HaveOccurred(), "Failed to clear table: "+table)
	}
}
