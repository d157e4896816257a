package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names. Each maps to <dir>/<name>.json on disk.
const (
	Users    = "users"
	Messages = "messages"
	Friends  = "friends"
	Groups   = "groups"
)

// emptyDefault is what an absent collection file is seeded with at startup.
var emptyDefault = map[string]string{
	Users:    "{}",
	Messages: "[]",
	Friends:  "{}",
	Groups:   "{}",
}

// Store persists the four collections as flat JSON documents. Every
// read-modify-write cycle on a collection must run under that collection's
// lock via Update; last-writer-wins races between concurrent requests are
// not possible within a single process.
type Store struct {
	dir string
	mu  map[string]*sync.Mutex
}

func New(dir string) *Store {
	mu := make(map[string]*sync.Mutex, len(emptyDefault))
	for name := range emptyDefault {
		mu[name] = &sync.Mutex{}
	}
	return &Store{dir: dir, mu: mu}
}

// Init creates the data directory and seeds absent collection files with
// their empty default document.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for name, def := range emptyDefault {
		p := s.path(name)
		if _, err := os.Stat(p); err == nil {
			continue
		}
		if err := os.WriteFile(p, []byte(def), 0o644); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}

// Update runs fn while holding the collection's lock. All repository
// operations, reads included, go through here.
func (s *Store) Update(collection string, fn func() error) error {
	mu, ok := s.mu[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Load reads the collection document into v. An absent or unparsable file
// leaves v at its empty default.
func (s *Store) Load(collection string, v any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if !json.Valid(data) {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil
	}
	return nil
}

// Save rewrites the collection document in full, pretty-printed with
// 4-space indentation.
func (s *Store) Save(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
