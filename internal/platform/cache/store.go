// Package cache is the on-disk response cache for immutable game documents. Files live at
// <dir>/<kind>/<key>.json and only allow-listed kinds are ever written.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
)

type Kind string

const (
	KindGameFeed   Kind = "game_feed"
	KindBoxscore   Kind = "boxscore"
	KindPlayByPlay Kind = "play_by_play"
)

// Cacheable is the fixed allow-list. Schedules, teams, players, rosters and venues are
// mutable upstream and never stored here.
var Cacheable = map[Kind]struct{}{
	KindGameFeed:   {},
	KindBoxscore:   {},
	KindPlayByPlay: {},
}

var (
	ErrNotCacheable = errors.New("cache: kind is not cacheable")
	ErrInvalidKey   = errors.New("cache: invalid key")
)

type Store struct {
	dir    string
	logger *logging.Logger
}

func NewStore(dir string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) Dir() string {
	return s.dir
}

func IsCacheable(kind Kind) bool {
	_, ok := Cacheable[kind]
	return ok
}

// Get returns the cached document. Non-cacheable kinds are always absent.
func (s *Store) Get(kind Kind, key string) ([]byte, bool, error) {
	path, err := s.path(kind, key)
	if err != nil {
		if errors.Is(err, ErrNotCacheable) {
			return nil, false, nil
		}
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache %s/%s: %w", kind, key, err)
	}
	s.logger.Debug("cache hit", "kind", kind, "key", key)
	return data, true, nil
}

// Set stores a document via temp file + rename so readers never see a partial file.
func (s *Store) Set(kind Kind, key string, data []byte) error {
	path, err := s.path(kind, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir %s: %w", kind, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write cache %s/%s: %w", kind, key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close cache %s/%s: %w", kind, key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("commit cache %s/%s: %w", kind, key, err)
	}

	s.logger.Debug("cache write", "kind", kind, "key", key, "bytes", len(data))
	return nil
}

func (s *Store) Exists(kind Kind, key string) bool {
	path, err := s.path(kind, key)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Delete removes a cached document; deleting a missing entry is not an error.
func (s *Store) Delete(kind Kind, key string) error {
	path, err := s.path(kind, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete cache %s/%s: %w", kind, key, err)
	}
	return nil
}

func (s *Store) path(kind Kind, key string) (string, error) {
	if !IsCacheable(kind) {
		return "", fmt.Errorf("%w: %s", ErrNotCacheable, kind)
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, string(kind), key+".json"), nil
}

type VerifyReport struct {
	Scanned int
	Removed int
}

// Verify decodes every cached file with a bounded worker pool and removes files that are
// not valid JSON (for example truncated by a crash on an older build).
func (s *Store) Verify(ctx context.Context, workers int) (VerifyReport, error) {
	if workers < 1 {
		workers = 1
	}

	var paths []string
	for kind := range Cacheable {
		dir := filepath.Join(s.dir, string(kind))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return VerifyReport{}, fmt.Errorf("list cache %s: %w", kind, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	return s.verifyPaths(ctx, pool, paths)
}

// submitter is the slice of *ants.Pool that verifyPaths needs.
type submitter interface {
	Submit(task func()) error
}

// verifyPaths always waits for every accepted task before returning, including when a
// later submission fails.
func (s *Store) verifyPaths(ctx context.Context, pool submitter, paths []string) (VerifyReport, error) {
	var (
		scanned  atomic.Int64
		removed  atomic.Int64
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		path := path
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			scanned.Add(1)
			ok, err := s.verifyFile(path)
			if err == nil && ok {
				return
			}
			if err == nil {
				err = os.Remove(path)
				if err == nil {
					removed.Add(1)
					s.logger.Warn("removed corrupt cache file", "path", path)
					return
				}
			}
			errMu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			errMu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return VerifyReport{Scanned: int(scanned.Load()), Removed: int(removed.Load())}, fmt.Errorf("submit cache verification: %w", err)
		}
	}
	wg.Wait()

	report := VerifyReport{Scanned: int(scanned.Load()), Removed: int(removed.Load())}
	if firstErr != nil {
		return report, firstErr
	}
	return report, ctx.Err()
}

func (s *Store) verifyFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	var doc any
	return sonic.Unmarshal(data, &doc) == nil, nil
}
