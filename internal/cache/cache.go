// Package cache implements the bounded response cache behind server reads.
//
// Entries are JSON files under a versioned directory, one file per key,
// carrying the fetch timestamp alongside the raw payload. Reads are fail
// soft: a missing, expired or corrupt entry is a miss, never an error, and
// writes that cannot complete are logged and absorbed.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/log"
	"github.com/wangjh9712/fullbr115/where"
)

// TTL bounds the lifetime of every cached response.
const TTL = 8 * time.Hour

// Version namespaces the storage layout. Bumping it orphans all previous
// entries without migration; the garbage sweep reaps them eventually.
const Version = "v1"

// entry is the persisted envelope: fetch time in epoch milliseconds plus
// the raw response body.
type entry struct {
	Ts   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

// Store is a TTL-bounded key to raw-JSON map persisted on the active
// filesystem backend. The zero value is not usable; construct with New
// or NewWith.
type Store struct {
	mu  sync.Mutex
	dir string
	ttl time.Duration
	now func() time.Time
}

// New returns a Store rooted in the user cache directory with the default
// lifetime and the wall clock.
func New() *Store {
	return NewWith(where.Responses(), TTL, time.Now)
}

// NewWith returns a Store with an explicit root, lifetime and clock.
// Tests use the clock to simulate expiry deterministically.
func NewWith(dir string, ttl time.Duration, now func() time.Time) *Store {
	return &Store{dir: dir, ttl: ttl, now: now}
}

// path maps a key to its entry file inside the current version namespace.
func (s *Store) path(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, Version, hex.EncodeToString(hash[:])+".json")
}

// Get returns the raw payload stored under key. The boolean reports a
// usable hit; expired and undecodable entries count as absent and are
// evicted on the spot.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	raw, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err = json.Unmarshal(raw, &e); err != nil || len(e.Data) == 0 {
		_ = filesystem.API().Remove(path)
		return nil, false
	}

	if s.now().Sub(time.UnixMilli(e.Ts)) > s.ttl {
		_ = filesystem.API().Remove(path)
		return nil, false
	}

	return e.Data, true
}

// Set persists data under key, best effort. The caller proceeds as if the
// write never happened when storage misbehaves (quota, permissions).
func (s *Store) Set(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := json.Marshal(entry{Ts: s.now().UnixMilli(), Data: data})
	if err != nil {
		log.Warnf("cache: encode entry for %q: %v", key, err)
		return
	}

	path := s.path(key)
	fs := filesystem.API()
	if err = fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Warnf("cache: prepare %q: %v", filepath.Dir(path), err)
		return
	}

	// Atomic swap so a torn write can never produce a half-entry.
	tmp := path + ".tmp"
	if err = fs.WriteFile(tmp, buf, 0644); err != nil {
		log.Warnf("cache: write %q: %v", key, err)
		return
	}
	if err = fs.Rename(tmp, path); err != nil {
		log.Warnf("cache: commit %q: %v", key, err)
		_ = fs.Remove(tmp)
	}
}

// Delete drops a single entry, used to invalidate a cached read after a
// related mutation lands.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = filesystem.API().Remove(s.path(key))
}

// Clear removes every entry of the current version.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filesystem.API().RemoveAll(filepath.Join(s.dir, Version))
}

// Sweep prunes expired entries and leftovers from previous versions,
// returning the number of files removed.
func (s *Store) Sweep() int {
	fs := filesystem.API()
	current := filepath.Join(s.dir, Version)

	var removed int
	_ = fs.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if filepath.Dir(path) != current {
			// Entry from an abandoned version namespace.
			if fs.Remove(path) == nil {
				removed++
			}
			return nil
		}

		raw, err := fs.ReadFile(path)
		if err != nil {
			return nil
		}
		var e entry
		if err = json.Unmarshal(raw, &e); err != nil || s.now().Sub(time.UnixMilli(e.Ts)) > s.ttl {
			if fs.Remove(path) == nil {
				removed++
			}
		}
		return nil
	})
	return removed
}

// CollectGarbage runs Sweep in the background.
func (s *Store) CollectGarbage() {
	go func() {
		if n := s.Sweep(); n > 0 {
			log.Infof("cache: swept %d stale entries", n)
		}
	}()
}
