package models

import "time"

// PolicyRecord persists the current PolicyConfiguration as a JSON blob.
// There is a single row; replacing the configuration overwrites it.
type PolicyRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Data      string    `gorm:"type:text"`
	UpdatedAt time.Time
}
