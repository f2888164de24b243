package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"followaudit/pkg/errors"
	"followaudit/pkg/followset"
	"followaudit/pkg/logger"
)

// FollowStore persists a follow set as a JSON array of identifiers in a
// single file
type FollowStore struct {
	path   string
	logger logger.Logger
	mu     sync.Mutex
}

// NewFollowStore creates a store backed by path. The parent directory is
// created on the first Save, not here.
func NewFollowStore(path string, log logger.Logger) *FollowStore {
	if log == nil {
		log = logger.GetLogger()
	}
	return &FollowStore{
		path:   path,
		logger: log.WithField("cache_file", path),
	}
}

// Path returns the location of the cache file
func (s *FollowStore) Path() string {
	return s.path
}

// Exists reports whether the cache file is present
func (s *FollowStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the stored follow set. A missing file yields an error of type
// storage_absent that also matches fs.ErrNotExist; unreadable or malformed
// content yields an error of type storage.
func (s *FollowStore) Load() (followset.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrorTypeStorageAbsent, fs.ErrNotExist, "no cached follow list at "+s.path)
		}
		return nil, errors.Wrap(errors.ErrorTypeStorage, err, "failed to read cached follow list")
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errors.Wrap(errors.ErrorTypeStorage, err, "cached follow list is not a JSON array of strings")
	}

	set := followset.New(ids...)
	s.logger.DebugWithFields("Follow list loaded", map[string]interface{}{
		"count": set.Len(),
	})
	return set, nil
}

// Save writes set to disk atomically, replacing any previous content
func (s *FollowStore) Save(set followset.Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set == nil {
		set = followset.New()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(errors.ErrorTypeStorage, err, "failed to create cache directory")
	}

	// Temp file in the same directory so the rename stays on one filesystem
	tempFile, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrorTypeStorage, err, "failed to create temporary cache file")
	}
	tempPath := tempFile.Name()

	encoder := json.NewEncoder(tempFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(set); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return errors.Wrap(errors.ErrorTypeStorage, err, "failed to encode follow list")
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return errors.Wrap(errors.ErrorTypeStorage, err, "failed to sync cache file")
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Wrap(errors.ErrorTypeStorage, err, "failed to close cache file")
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return errors.Wrap(errors.ErrorTypeStorage, err, fmt.Sprintf("failed to replace %s", s.path))
	}

	s.logger.DebugWithFields("Follow list saved", map[string]interface{}{
		"count": set.Len(),
	})
	return nil
}
