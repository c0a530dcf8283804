package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// FileStore persists the hierarchy as a single JSON file. One logical writer
// performs read-modify-write cycles; the store itself never interleaves I/O
// with engine operations.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given file path. The parent directory
// is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load reads the hierarchy. A missing file is an empty hierarchy, not an
// error. Rollups are recomputed on load so derived values are never stale.
func (s *FileStore) Load() (*domain.Hierarchy, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewHierarchy(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	h, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	rollup.RecomputeAll(h)
	return h, nil
}

// Save writes the hierarchy atomically: temp file in the same directory,
// then rename.
func (s *FileStore) Save(h *domain.Hierarchy) error {
	data, err := Encode(h)
	if err != nil {
		return fmt.Errorf("encoding hierarchy: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gatetrack-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Backup copies the current data file to a date-stamped sibling, run once
// at startup before any mutation of the day. Missing data is not an error;
// an existing backup for today is left alone.
func (s *FileStore) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", s.path, err)
	}

	stamp := time.Now().Format("2006-01-02")
	base := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	backupPath := filepath.Join(filepath.Dir(s.path), fmt.Sprintf("%s_backup_%s.json", base, stamp))

	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, nil
	}
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return backupPath, nil
}
