package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/gatherdb/internal/cache"
	"github.com/ppiankov/gatherdb/internal/model"
)

// ErrNotFound is returned when no snapshot exists for a date
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes dated snapshot files in a directory
type Store struct {
	dir    string
	prefix string
	cache  cache.Cache // Optional (nil disables caching)
	create func(name string) (io.WriteCloser, error)
}

// NewStore creates a store rooted at dir. The cache may be nil.
func NewStore(dir, prefix string, c cache.Cache) *Store {
	return &Store{
		dir:    dir,
		prefix: prefix,
		cache:  c,
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
}

// Path returns the file path for the snapshot of a date
func (s *Store) Path(date time.Time) string {
	return filepath.Join(s.dir, FileName(s.prefix, date))
}

// Save writes the snapshot for a date, truncating any existing file.
// The directory must already exist. The cache is only filled once the
// file has been closed successfully.
func (s *Store) Save(date time.Time, snap *model.Snapshot) (path string, err error) {
	path = s.Path(date)

	data, err := snap.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	f, err := s.create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			path, err = "", fmt.Errorf("close snapshot file: %w", closeErr)
		}
		if err == nil && s.cache != nil {
			_ = s.cache.Set(cache.CacheKey(path), data, 0)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("write snapshot file: %w", err)
	}

	return path, nil
}

// Load reads the snapshot for a date
func (s *Store) Load(date time.Time) (*model.Snapshot, error) {
	path := s.Path(date)

	data, err := s.read(path)
	if err != nil {
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &snap, nil
}

func (s *Store) read(path string) ([]byte, error) {
	key := cache.CacheKey(path)
	if s.cache != nil {
		if data, found := s.cache.Get(key); found {
			return data, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(key, data, 0)
	}

	return data, nil
}
