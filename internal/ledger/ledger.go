// Package ledger indexes completed runs in a database.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/topicrun/internal/models"
	"gorm.io/gorm"
)

// Entry describes a finished run.
type Entry struct {
	TopicIndex  uint64
	Topic       string
	Model       string
	RecordPath  string
	Parsed      bool
	InvokeError string
	Latency     time.Duration
	CreatedAt   time.Time
}

// Ledger writes and queries run rows.
type Ledger struct {
	db *gorm.DB
}

// New returns a Ledger backed by db. The runs table must already exist.
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Add inserts one run row and returns its generated ID.
func (l *Ledger) Add(ctx context.Context, e Entry) (string, error) {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	run := models.Run{
		ID:          uuid.NewString(),
		TopicIndex:  e.TopicIndex,
		Topic:       e.Topic,
		Model:       e.Model,
		RecordPath:  e.RecordPath,
		Parsed:      e.Parsed,
		InvokeError: e.InvokeError,
		LatencyMs:   e.Latency.Milliseconds(),
		CreatedAt:   createdAt.UTC(),
	}
	if err := l.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("ledger: add run %d: %w", e.TopicIndex, err)
	}
	return run.ID, nil
}

// Recent returns up to limit runs, newest first. A model filter of "" matches
// all models.
func (l *Ledger) Recent(ctx context.Context, limit int, model string) ([]models.Run, error) {
	q := l.db.WithContext(ctx).Model(&models.Run{})
	if model != "" {
		q = q.Where("model = ?", model)
	}
	var runs []models.Run
	if err := q.Order("created_at DESC").Order("topic_index DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("ledger: query runs: %w", err)
	}
	return runs, nil
}

// ByIndex returns every run recorded for idx, oldest first.
func (l *Ledger) ByIndex(ctx context.Context, idx uint64) ([]models.Run, error) {
	var runs []models.Run
	if err := l.db.WithContext(ctx).Where("topic_index = ?", idx).Order("created_at ASC").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("ledger: query index %d: %w", idx, err)
	}
	return runs, nil
}
