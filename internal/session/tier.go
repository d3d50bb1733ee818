package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Persistence tier keys. Both tiers use the same names; which tier holds a
// live entry depends on the remember-me choice at sign-in time.
const (
	KeyUser          = "user"
	KeyAuthenticated = "isAuthenticated"
	KeyTheme         = "theme"
)

// Tier is a string key-value store. The durable tier survives restarts; the
// session tier lasts only for the current process.
type Tier interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryTier is the session-scoped tier. Contents are lost at process exit.
type MemoryTier struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{values: make(map[string]string)}
}

func (t *MemoryTier) Get(key string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.values[key]
	return v, ok
}

func (t *MemoryTier) Set(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[key] = value
}

func (t *MemoryTier) Delete(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.values, key)
}

// FileTier is the durable tier: a JSON file rewritten on every mutation and
// reloaded at construction, so entries survive restarts.
type FileTier struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileTier loads (or creates) the tier file under dir.
func NewFileTier(dir, name string) (*FileTier, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	t := &FileTier{
		path:   filepath.Join(dir, name),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &t.values); err != nil {
		// A corrupt tier file behaves like an empty one.
		log.Printf("[WARN] Discarding unreadable tier file %s: %v", t.path, err)
		t.values = make(map[string]string)
	}
	return t, nil
}

func (t *FileTier) Get(key string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.values[key]
	return v, ok
}

func (t *FileTier) Set(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[key] = value
	t.flush()
}

func (t *FileTier) Delete(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.values, key)
	t.flush()
}

func (t *FileTier) flush() {
	data, err := json.Marshal(t.values)
	if err != nil {
		log.Printf("[ERROR] Failed to encode tier file %s: %v", t.path, err)
		return
	}
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		log.Printf("[ERROR] Failed to write tier file %s: %v", t.path, err)
	}
}
