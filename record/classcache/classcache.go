// Package classcache interns repeated document class-name strings so a
// bulk encoder processing many documents of a handful of classes can skip
// redundant UTF-8 validation and allocation for names it has already seen.
// It is a supplemental, in-memory optimization: nothing in the record wire
// format requires it, and a Cache's contents never affect encoded bytes.
package classcache

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/recordwire/codec/internal/hash"
)

// Cache interns class-name strings keyed by their xxHash64. It is safe for
// concurrent use.
type Cache struct {
	mu   sync.RWMutex
	seen map[uint64]string
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{seen: make(map[uint64]string)}
}

// Intern returns the canonical string for name. The first call for a given
// class name validates its UTF-8 and stores it; subsequent calls with
// identical content return the cached string without re-validating. A
// hash collision against a different name falls back to validating name
// directly rather than trusting the cached value.
func (c *Cache) Intern(name string) (string, error) {
	h := hash.ID(name)

	c.mu.RLock()
	cached, ok := c.seen[h]
	c.mu.RUnlock()

	if ok && cached == name {
		return cached, nil
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("classcache: invalid utf-8 class name")
	}

	c.mu.Lock()
	c.seen[h] = name
	c.mu.Unlock()

	return name, nil
}

// Len returns the number of distinct class names currently interned.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.seen)
}
