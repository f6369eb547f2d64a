// Package store persists completed interview sessions. The primary sink
// is one JSON file per session on disk; a PostgreSQL archive is an
// optional secondary sink for deployments that want queryable history.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// timestampLayout matches the original session filename convention.
// Collisions are possible at sub-second granularity; the store does not
// attempt to avoid them.
const timestampLayout = "20060102_150405"

// FileStore writes one JSON file per completed session.
type FileStore struct {
	dir string
	log *zap.Logger
	now func() time.Time
}

// NewFileStore creates the save directory if needed and returns a store
// writing into it.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, log: logger, now: time.Now}, nil
}

// Save stamps the record's metadata from the current time and the
// record's own fields, writes it as indented JSON, and returns the path.
func (s *FileStore) Save(record types.SessionRecord) (string, error) {
	timestamp := s.now().Format(timestampLayout)
	record.Metadata = types.Metadata{
		Timestamp:     timestamp,
		Role:          record.Role,
		Domain:        record.Domain,
		InterviewType: record.InterviewType,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("session_%s.json", timestamp))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write session file: %w", err)
	}

	s.log.Info("session saved",
		zap.String("path", path),
		zap.String("role", record.Role),
		zap.Float64("average_score", record.AverageScore))
	return path, nil
}

// Load reads a previously saved session record back from disk.
func (s *FileStore) Load(path string) (*types.SessionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}

	var record types.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}
	return &record, nil
}

// HistoryEntry is one row of the saved-session listing.
type HistoryEntry struct {
	Filename      string              `json:"filename"`
	Timestamp     string              `json:"timestamp"`
	Role          string              `json:"role"`
	Domain        string              `json:"domain"`
	InterviewType types.InterviewType `json:"interview_type"`
	AverageScore  float64             `json:"average_score"`
}

// History lists every saved session in the directory, newest first.
// Unreadable or non-session files are skipped, not fatal.
func (s *FileStore) History() ([]HistoryEntry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read session directory %s: %w", s.dir, err)
	}

	var history []HistoryEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		record, err := s.Load(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.log.Warn("skipping unreadable session file",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}

		history = append(history, HistoryEntry{
			Filename:      entry.Name(),
			Timestamp:     record.Metadata.Timestamp,
			Role:          record.Metadata.Role,
			Domain:        record.Metadata.Domain,
			InterviewType: record.Metadata.InterviewType,
			AverageScore:  record.AverageScore,
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp > history[j].Timestamp
	})
	return history, nil
}

// Dir returns the directory sessions are saved into.
func (s *FileStore) Dir() string { return s.dir }
