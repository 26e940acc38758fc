// Package models defines the GORM models of the run ledger.
package models

import "time"

// Run is one ledger row per pipeline execution. The record file on disk is
// authoritative; this row indexes it.
type Run struct {
	ID          string `gorm:"primaryKey;size:36"`
	TopicIndex  uint64 `gorm:"index;not null"`
	Topic       string `gorm:"type:text"`
	Model       string `gorm:"size:64;index"`
	RecordPath  string `gorm:"size:512"`
	Parsed      bool
	InvokeError string `gorm:"type:text"`
	LatencyMs   int64
	CreatedAt   time.Time `gorm:"index"`
}
