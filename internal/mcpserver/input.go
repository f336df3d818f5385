package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/circegen/circegen/caseclass"
)

// declarationInput represents the two ways a case class can be provided to a tool.
// Exactly one of Declaration or File must be set.
type declarationInput struct {
	Declaration string `json:"declaration,omitempty" jsonschema:"Inline Scala case class declaration, e.g. case class Person(age: Int)"`
	File        string `json:"file,omitempty"        jsonschema:"Path to a file containing one case class declaration"`
	SplitMode   string `json:"split_mode,omitempty"  jsonschema:"How to split type parameter and field lists: flat (every comma) or nested (top-level commas only). Default from CIRCEGEN_SPLIT_MODE"`
}

// cacheEntry holds a cached declaration with LRU ordering and TTL expiry.
type cacheEntry struct {
	decl      *caseclass.Declaration
	insertAt  time.Time
	expiresAt time.Time
}

// declarationCacheStore provides a session-scoped cache for parsed declarations.
// File inputs are keyed by (absolutePath, modTime, mode). Inline inputs are keyed
// by a SHA-256 hash of the text and the mode. Expired entries are removed lazily.
type declarationCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var declarationCache = &declarationCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached declaration or nil.
func (c *declarationCacheStore) get(key string) *caseclass.Declaration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.decl
	}
	return nil
}

// put stores a declaration, evicting the least recently used entry if at capacity.
func (c *declarationCacheStore) put(key string, decl *caseclass.Declaration, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{decl: decl, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = entry
}

// reset clears all cached entries. Used in tests.
func (c *declarationCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *declarationCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input and split mode.
// Returns "" when the input cannot be keyed.
func makeCacheKey(in declarationInput, mode caseclass.SplitMode) string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%s", absPath, info.ModTime().UnixNano(), mode)
	case in.Declaration != "":
		h := sha256.Sum256([]byte(in.Declaration))
		return fmt.Sprintf("inline:%s:%s", hex.EncodeToString(h[:]), mode)
	default:
		return ""
	}
}

// splitMode returns the requested split mode, falling back to the configured default.
func (in declarationInput) splitMode() (caseclass.SplitMode, error) {
	if in.SplitMode == "" {
		return cfg.Mode(), nil
	}
	return caseclass.ParseSplitMode(in.SplitMode)
}

// resolve parses the declaration from whichever input was provided, using the
// cache when it is enabled.
func (in declarationInput) resolve() (*caseclass.Declaration, error) {
	count := 0
	if in.Declaration != "" {
		count++
	}
	if in.File != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of declaration or file must be provided (got %d)", count)
	}

	mode, err := in.splitMode()
	if err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(in, mode)
	}
	if key != "" {
		if cached := declarationCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []caseclass.Option{
		caseclass.WithSplitMode(mode),
		caseclass.WithMaxInputSize(cfg.MaxInputSize),
	}

	var decl *caseclass.Declaration
	if in.File != "" {
		f, openErr := os.Open(in.File)
		if openErr != nil {
			return nil, fmt.Errorf("opening declaration file: %w", openErr)
		}
		defer func() { _ = f.Close() }()
		decl, err = caseclass.ParseWithOptions(append(opts, caseclass.WithReader(f))...)
	} else {
		decl, err = caseclass.ParseWithOptions(append(opts, caseclass.WithReader(strings.NewReader(in.Declaration)))...)
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		declarationCache.put(key, decl, cfg.CacheTTL)
	}
	return decl, nil
}
