package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache provides in-memory caching for objects.
type Cache interface {
	Get(key string) ([]byte, bool)
	Add(key string, value []byte)
	Has(key string) bool
	Remove(key string)
	Clear()
}

// LRUCache is a size-bounded least-recently-used Cache. It is safe for
// concurrent use.
type LRUCache struct {
	items *lru.Cache[string, []byte]
}

// NewLRUCache creates a new LRU cache holding at most maxSize objects.
func NewLRUCache(maxSize int) (*LRUCache, error) {
	items, err := lru.New[string, []byte](maxSize)
	if err != nil {
		return nil, fmt.Errorf("lru cache: %w", err)
	}
	return &LRUCache{items: items}, nil
}

func (c *LRUCache) Get(key string) ([]byte, bool) { return c.items.Get(key) }
func (c *LRUCache) Add(key string, value []byte)  { c.items.Add(key, value) }
func (c *LRUCache) Has(key string) bool           { return c.items.Contains(key) }
func (c *LRUCache) Remove(key string)             { c.items.Remove(key) }
func (c *LRUCache) Clear()                        { c.items.Purge() }

// nopCache is used when caching is disabled.
type nopCache struct{}

func (nopCache) Get(string) ([]byte, bool) { return nil, false }
func (nopCache) Add(string, []byte)        {}
func (nopCache) Has(string) bool           { return false }
func (nopCache) Remove(string)             {}
func (nopCache) Clear()                    {}

// NewCache returns an LRUCache for a positive size and a cache that keeps
// nothing otherwise.
func NewCache(size int) (Cache, error) {
	if size <= 0 {
		return nopCache{}, nil
	}
	return NewLRUCache(size)
}
