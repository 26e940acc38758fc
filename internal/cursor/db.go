package cursor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zulandar/topicrun/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultName is the cursor row used when DBStore.Name is empty.
const DefaultName = "default"

// DBStore keeps the cursor in the cursors table.
type DBStore struct {
	DB   *gorm.DB
	Name string
}

func (s *DBStore) name() string {
	if s.Name == "" {
		return DefaultName
	}
	return s.Name
}

// Read returns the stored position, or 0 when no row exists yet.
func (s *DBStore) Read(ctx context.Context) (uint64, error) {
	var c models.Cursor
	err := s.DB.WithContext(ctx).Where("name = ?", s.name()).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cursor: read %q: %w", s.name(), err)
	}
	return c.Position, nil
}

// Write upserts the cursor row.
func (s *DBStore) Write(ctx context.Context, idx uint64) error {
	c := models.Cursor{Name: s.name(), Position: idx, UpdatedAt: time.Now().UTC()}
	result := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "updated_at"}),
	}).Create(&c)
	if result.Error != nil {
		return fmt.Errorf("cursor: write %q: %w", s.name(), result.Error)
	}
	return nil
}
