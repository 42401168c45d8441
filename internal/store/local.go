package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aweris/mygit/internal/compression"
	"github.com/aweris/mygit/internal/metrics"
)

const (
	dirPerm  = 0o755
	filePerm = 0o444
)

var _ Store = (*LocalStore)(nil)

// LocalStore implements Store using the local filesystem.
//
// Storage layout:
//
//	objectsDir/
//	  ab/cd123...  (zlib-compressed objects)
//
// Shard directories are created on first write.
type LocalStore struct {
	objectsDir string
	cache      Cache
	compressor *compression.Compressor
	metrics    *metrics.Metrics
}

// NewLocalStore opens the store rooted at objectsDir, which must already
// exist. A cacheSize of zero disables caching.
func NewLocalStore(objectsDir string, cacheSize, compressionLevel int, m *metrics.Metrics) (*LocalStore, error) {
	info, err := os.Stat(objectsDir)
	if err != nil {
		return nil, fmt.Errorf("objects directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("objects directory %s: not a directory", objectsDir)
	}

	compressor, err := compression.NewCompressor(compressionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	cache, err := NewCache(cacheSize)
	if err != nil {
		return nil, err
	}

	return &LocalStore{
		objectsDir: objectsDir,
		cache:      cache,
		compressor: compressor,
		metrics:    m,
	}, nil
}

// Get retrieves an object by name.
func (s *LocalStore) Get(name string) ([]byte, error) {
	// 1. Check memory cache
	if data, ok := s.cache.Get(name); ok {
		s.metrics.CacheHit()
		return data, nil
	}

	// 2. Read from disk
	path := s.Path(name)
	compressed, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", name, err)
	}

	data, err := s.compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}

	// 3. Cache and return
	s.cache.Add(name, data)
	return data, nil
}

// Put compresses data and stores it under name. An existing file that no
// longer decompresses is replaced.
func (s *LocalStore) Put(name string, data []byte) (bool, error) {
	// 1. Check if already exists and is readable
	path := s.Path(name)
	if s.intact(path) {
		return false, nil
	}

	compressed, err := s.compressor.Compress(data)
	if err != nil {
		return false, fmt.Errorf("failed to compress object: %w", err)
	}

	// 2. Write to disk
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := writeFileAtomic(path, compressed); err != nil {
		return false, fmt.Errorf("failed to write object: %w", err)
	}

	// 3. Cache in memory
	s.cache.Add(name, data)

	return true, nil
}

// intact reports whether path holds a complete zlib stream.
func (s *LocalStore) intact(path string) bool {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, err = s.compressor.Decompress(compressed)
	return err == nil
}

// Has checks if an object exists on disk.
func (s *LocalStore) Has(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Evict removes an object from cache.
func (s *LocalStore) Evict(name string) {
	s.cache.Remove(name)
}

// Clear clears the cache.
func (s *LocalStore) Clear() {
	s.cache.Clear()
}

// Path returns the filesystem path for an object name.
// Git-style sharding: objects/ab/cd123...
func (s *LocalStore) Path(name string) string {
	if len(name) <= 2 {
		return filepath.Join(s.objectsDir, name)
	}
	return filepath.Join(s.objectsDir, name[:2], name[2:])
}

// writeFileAtomic writes data next to path and renames it into place, so a
// crash never leaves a partial object under its final name.
func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(filePerm); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
