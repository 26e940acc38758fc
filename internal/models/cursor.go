package models

import "time"

// Cursor stores the next topic index for a named sequence.
type Cursor struct {
	Name      string `gorm:"primaryKey;size:64"`
	Position  uint64 `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
