package models

import "time"

// InteractionLog is one append-only audit row per completed verification cycle.
// Rows are never updated or deleted here; retention is an operational concern.
// The auto-increment ID doubles as the append order.
type InteractionLog struct {
	ID                 uint `gorm:"primaryKey"`
	CycleID            string
	Question           string
	Answer             string
	VerificationStatus string
	CreatedAt          time.Time
}
