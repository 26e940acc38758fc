// Package cursor persists the index of the next topic to request.
//
// Stores perform no locking. Two runs started at the same time may read the
// same index; the tool is meant to be driven by one operator at a time.
package cursor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IndexFile is the file name FileStore uses inside the state directory.
const IndexFile = "last_index.txt"

// Store reads and writes the topic cursor.
type Store interface {
	Read(ctx context.Context) (uint64, error)
	Write(ctx context.Context, idx uint64) error
}

// FileStore keeps the cursor as decimal text in a single file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for <stateDir>/last_index.txt.
func NewFileStore(stateDir string) *FileStore {
	return &FileStore{Path: filepath.Join(stateDir, IndexFile)}
}

// Read returns the stored index. A missing file, or content that is not a
// non-negative integer, reads as 0.
func (s *FileStore) Read(ctx context.Context) (uint64, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("cursor: read %s: %w", s.Path, err)
	}
	idx, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, nil
	}
	return idx, nil
}

// Write overwrites the stored index.
func (s *FileStore) Write(ctx context.Context, idx uint64) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("cursor: create state dir: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(strconv.FormatUint(idx, 10)), 0644); err != nil {
		return fmt.Errorf("cursor: write %s: %w", s.Path, err)
	}
	return nil
}
