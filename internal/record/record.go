// Package record builds and persists the JSON envelope for one run.
package record

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampFormat is the UTC layout used in records and file names.
const TimestampFormat = "2006-01-02T15:04:05Z"

// Record is the persisted result of one run. Field order is the order keys
// appear in the file.
type Record struct {
	TimestampUTC   string `json:"timestamp_utc"`
	Model          string `json:"model"`
	TopicIndex     uint64 `json:"topic_index"`
	Topic          string `json:"topic"`
	Prompt         string `json:"prompt"`
	ResponseRaw    string `json:"response_raw"`
	ResponseParsed any    `json:"response_parsed"`
}

// New assembles a Record stamped with now in UTC.
func New(now time.Time, model string, idx uint64, topic, prompt, raw string, parsed any) Record {
	return Record{
		TimestampUTC:   now.UTC().Format(TimestampFormat),
		Model:          model,
		TopicIndex:     idx,
		Topic:          topic,
		Prompt:         prompt,
		ResponseRaw:    raw,
		ResponseParsed: parsed,
	}
}

// TopicHash returns the first 10 hex digits of the SHA-256 of topic.
func TopicHash(topic string) string {
	sum := sha256.Sum256([]byte(topic))
	return hex.EncodeToString(sum[:])[:10]
}

// Filename returns <compact timestamp>__<index padded to 12>_<topic hash>.json.
func Filename(rec Record) string {
	ts := strings.NewReplacer(":", "", "-", "").Replace(rec.TimestampUTC)
	return fmt.Sprintf("%s__%012d_%s.json", ts, rec.TopicIndex, TopicHash(rec.Topic))
}

// Encode renders rec as two-space indented JSON with non-ASCII and HTML
// characters left unescaped and no trailing newline.
func Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("record: encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Writer stores records as individual files in Dir.
type Writer struct {
	Dir string
}

// Write serializes rec to Dir/Filename(rec) and returns the path. An existing
// file with the same name is overwritten.
func (w *Writer) Write(rec Record) (string, error) {
	data, err := Encode(rec)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("record: create %s: %w", w.Dir, err)
	}
	path := filepath.Join(w.Dir, Filename(rec))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("record: write %s: %w", path, err)
	}
	return path, nil
}

// Read loads a record file written by Writer.
func Read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record: read %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("record: decode %s: %w", path, err)
	}
	return &rec, nil
}

// List returns the record files in dir sorted by name, which is also
// chronological order. A missing dir yields no records.
func List(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*__*_*.json"))
	if err != nil {
		return nil, fmt.Errorf("record: list %s: %w", dir, err)
	}
	return paths, nil
}
