package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"datalens/domain/table"
	"datalens/internal"
	"datalens/internal/errors"
	"datalens/ports"

	"golang.org/x/sync/singleflight"
)

// Loader turns files into typed Tables and memoizes the result. The cache is
// keyed by absolute path plus file mtime and size, so editing the file in
// place invalidates the entry instead of serving a stale table for the life
// of the process.
type Loader struct {
	reader ports.DatasetReader
	log    *internal.Logger

	mu    sync.RWMutex
	cache map[string]*table.Table
	group singleflight.Group
}

// NewLoader creates a loader over the given reader
func NewLoader(reader ports.DatasetReader) *Loader {
	return &Loader{
		reader: reader,
		log:    internal.DefaultLogger,
		cache:  make(map[string]*table.Table),
	}
}

// Load returns the Table for path, reading the file at most once per file
// version. Concurrent loads of the same version collapse into a single read.
// Errors: NOT_FOUND when the path does not exist, EMPTY_DATA when the file
// yields zero data rows.
func (l *Loader) Load(ctx context.Context, path string) (*table.Table, error) {
	key, err := l.cacheKey(path)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	cached, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		raw, err := l.reader.Read(ctx, path)
		if err != nil {
			return nil, err
		}
		if len(raw.Rows) == 0 {
			return nil, errors.EmptyData(fmt.Sprintf("dataset %s has no data rows", path))
		}
		t, err := table.FromRaw(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build table from %s", path)
		}

		l.mu.Lock()
		l.cache[key] = t
		l.mu.Unlock()

		cls := t.Classify()
		l.log.Info("loaded %s: %d rows, %d numeric / %d categorical columns",
			path, t.RowCount(), len(cls.Numeric), len(cls.Categorical))
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*table.Table), nil
}

// cacheKey stats the file and derives the version-aware key. A missing file
// surfaces here as NOT_FOUND before any read is attempted.
func (l *Loader) cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve path %s", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("data file " + path)
		}
		return "", errors.Wrapf(err, "failed to stat %s", path)
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.ModTime().UnixNano(), info.Size()), nil
}

// CachedVersions returns the number of distinct file versions currently held
func (l *Loader) CachedVersions() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}
